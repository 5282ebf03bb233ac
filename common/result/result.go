// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

// Result pairs a value with an error. It is used where a single type has to
// carry either outcome, for instance as the element type of a channel
// streaming blocks out of an archive.
type Result[T any] struct {
	Value T
	Error error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func Err[T any](err error) Result[T] {
	return Result[T]{Error: err}
}

// Get returns the value and error contained in the Result.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Error
}

// Failed reports whether the result carries an error.
func (r Result[T]) Failed() bool {
	return r.Error != nil
}
