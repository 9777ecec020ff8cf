// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ToddHoff/lambda-api/internal/utils"
	"github.com/ToddHoff/lambda-api/models"
)

// ErrEmptyEvent is returned when the event source holds no data.
var ErrEmptyEvent = errors.New("empty event")

func runInvoke(cmd *cobra.Command, opts *options, eventPath string, compact bool) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	event, err := readEvent(eventPath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	a, err := opts.newAPI(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	env, err := a.Run(cmd.Context(), event)
	if err != nil {
		return fmt.Errorf("error running event: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), env, compact)
}

// readEvent decodes an event from path, or from stdin when path is "-".
func readEvent(path string, stdin io.Reader) (models.Event, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("error reading event: %w", err)
	}
	if len(data) == 0 {
		return models.Event{}, ErrEmptyEvent
	}

	var event models.Event
	if err = utils.JSON.Unmarshal(data, &event); err != nil {
		return models.Event{}, fmt.Errorf("error decoding event: %w", err)
	}
	return event, nil
}

func printJSON(w io.Writer, v any, compact bool) error {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = utils.JSON.Marshal(v)
	} else {
		out, err = utils.JSON.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}
