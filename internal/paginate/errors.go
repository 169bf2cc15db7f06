// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paginate

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAnInteger is wrapped by [ParamError] when a page parameter
	// cannot be parsed as an integer.
	ErrNotAnInteger = errors.New("must be an integer")

	// ErrNotPositive is wrapped by [ParamError] when per_page reaches
	// [Paginate] with a value below 1.
	ErrNotPositive = errors.New("must be a positive integer")

	// ErrCountingItems and ErrSlicingItems wrap failures of the underlying
	// [Query].
	ErrCountingItems = errors.New("error counting items")
	ErrSlicingItems  = errors.New("error slicing items")
)

// ParamError reports an invalid page-selection parameter.
type ParamError struct {
	Param string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid `%s` parameter: %v", e.Param, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}
