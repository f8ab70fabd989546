// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
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

// Package sink routes finished benchmark records to the tooling that consumes
// them: stdout for the common case, optionally a Redis list that external
// collectors drain. Sinks carry formatted lines, never raw benchmark data.
package sink

import (
	"context"
	"fmt"
	"io"
)

// Sink receives one formatted record line per metric.
type Sink interface {
	Emit(ctx context.Context, line string) error
	Close() error
}

// WriterSink writes each line to an io.Writer, one record per line. This is
// the stdout path of the CLI tools.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w.
func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{w: w} }

func (s *WriterSink) Emit(_ context.Context, line string) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}

func (s *WriterSink) Close() error { return nil }

// Multi fans one record out to several sinks, stopping at the first failure.
type Multi []Sink

func (m Multi) Emit(ctx context.Context, line string) error {
	for _, s := range m {
		if err := s.Emit(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var firstErr error
	for _, s := range m {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
