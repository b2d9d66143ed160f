// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/AleutianAI/f/cmd/f/internal/gitstatus"
)

// Action identifies one post-selection operation.
type Action string

const (
	ActionAdd        Action = "add"
	ActionDiff       Action = "diff"
	ActionStagedDiff Action = "staged-diff"
	ActionEdit       Action = "edit"
	ActionQuit       Action = "quit"
)

// ChooseAction runs the action menu for a picked file. Aborting the
// menu (Ctrl-C, Esc) is an ordinary quit, not an error.
func ChooseAction(file *gitstatus.GitFile) (Action, error) {
	var choice Action

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[Action]().
			Title(file.RelPath).
			Description("choose an action").
			Options(
				huh.NewOption("add", ActionAdd),
				huh.NewOption("diff", ActionDiff),
				huh.NewOption("staged diff", ActionStagedDiff),
				huh.NewOption("edit", ActionEdit),
				huh.NewOption("quit", ActionQuit),
			).
			Value(&choice),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ActionQuit, nil
		}
		return ActionQuit, err
	}
	return choice, nil
}
