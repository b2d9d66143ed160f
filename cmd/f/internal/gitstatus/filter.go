// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package gitstatus

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterFiles returns the entries whose relative path matches the
// doublestar pattern; an empty pattern keeps everything. Filtering
// happens after ID assignment, so a filtered listing shows the same
// identifiers as the full one.
func FilterFiles(files []GitFile, pattern string) ([]GitFile, error) {
	if pattern == "" {
		return files, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid filter pattern: %q", pattern)
	}

	out := make([]GitFile, 0, len(files))
	for i := range files {
		if ok, _ := doublestar.Match(pattern, files[i].RelPath); ok {
			out = append(out, files[i])
		}
	}
	return out, nil
}
