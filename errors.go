// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mrsh

import (
	"errors"
	"fmt"
)

// Error taxonomy for the core. EmptyInput is deliberately absent: an empty
// byte slice is a valid input that produces a valid, empty Fingerprint, not
// an error (spec §7).
var (
	// ErrLabelTooLong is returned when a label exceeds maxLabelLen bytes.
	ErrLabelTooLong = errors.New("mrsh: label exceeds maximum length")

	// ErrLabelHasColon is returned when a label contains the field
	// separator used by the wire format. The text codec has no escaping
	// mechanism, so labels containing ':' are rejected at construction
	// time rather than silently mis-parsed on read (spec §9).
	ErrLabelHasColon = errors.New("mrsh: label must not contain ':'")

	// ErrParse is the umbrella sentinel for malformed wire-format text.
	// Concrete parse failures wrap it with fmt.Errorf("%w: ...", ErrParse).
	ErrParse = errors.New("mrsh: malformed fingerprint text")

	// ErrFilterCount is returned when a parsed filter_count is not a
	// decimal integer of at least 1.
	ErrFilterCount = fmt.Errorf("%w: invalid filter_count", ErrParse)

	// ErrHexLength is returned when the hex payload's length does not
	// equal filter_count * FilterSize * 2.
	ErrHexLength = fmt.Errorf("%w: hex payload length mismatch", ErrParse)

	// ErrHexChars is returned when the hex payload contains non-hex
	// characters.
	ErrHexChars = fmt.Errorf("%w: invalid hex characters", ErrParse)

	// ErrTailBlockCount is returned when tail_block_count exceeds
	// MaxBlocks.
	ErrTailBlockCount = fmt.Errorf("%w: tail_block_count exceeds MaxBlocks", ErrParse)

	// ErrField is returned when the wire line is missing one of its four
	// leading colon-delimited fields.
	ErrField = fmt.Errorf("%w: missing field", ErrParse)

	// ErrInvalidRollingWindow is returned when CoreParams.RollingWindow is
	// outside (0, rollingWindowMax].
	ErrInvalidRollingWindow = errors.New("mrsh: rolling window out of range")

	// ErrInvalidBlockTrigger is returned when CoreParams.BlockTrigger is 0:
	// the chunker reduces the rolling hash mod BlockTrigger, so zero would
	// divide by zero.
	ErrInvalidBlockTrigger = errors.New("mrsh: block trigger must be non-zero")

	// ErrInvalidSkip is returned when CoreParams.Skip is negative.
	ErrInvalidSkip = errors.New("mrsh: skip must be non-negative")

	// ErrInvalidFilterSize is returned when CoreParams.FilterSize is not
	// positive.
	ErrInvalidFilterSize = errors.New("mrsh: filter size must be positive")

	// ErrInvalidMaxBlocks is returned when CoreParams.MaxBlocks is not
	// positive.
	ErrInvalidMaxBlocks = errors.New("mrsh: max blocks must be positive")

	// ErrInvalidKHashes is returned when CoreParams.KHashes is not
	// positive.
	ErrInvalidKHashes = errors.New("mrsh: k hashes must be positive")

	// ErrInvalidMode is returned when CoreParams.Mode is neither ModeFile
	// nor ModeNetwork.
	ErrInvalidMode = errors.New("mrsh: invalid chunk mode")
)
