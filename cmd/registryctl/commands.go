/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/suparena/structregistry"
	"github.com/suparena/structregistry/codec"
	"github.com/suparena/structregistry/shape"
)

// eventFlags holds the notification flags shared by the create commands.
type eventFlags struct {
	eventID  string
	newEvent bool
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.eventID, "event-id", "", "emit StructCreated with this event id")
	cmd.Flags().BoolVar(&f.newEvent, "new-event", false, "emit StructCreated with a generated event id")
	cmd.MarkFlagsMutuallyExclusive("event-id", "new-event")
}

// resolve returns the event id to pass to the registry, or nil for none.
func (f *eventFlags) resolve() *string {
	switch {
	case f.eventID != "":
		id := f.eventID
		return &id
	case f.newEvent:
		id := uuid.NewString()
		return &id
	default:
		return nil
	}
}

func (c *cli) createInnerCmd() *cobra.Command {
	var ev eventFlags
	cmd := &cobra.Command{
		Use:     "create-inner <json>",
		Short:   "Store an Inner record given as JSON text",
		Example: `  registryctl create-inner '{"id":"111","value":"v","my_value":"mv"}' --event-id evt-1`,
		Args:    cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			eventID := ev.resolve()
			if err := c.reg.CreateInnerText(cmd.Context(), args[0], eventID); err != nil {
				return err
			}
			printCreated(cmd, eventID)
			return nil
		}),
	}
	ev.register(cmd)
	return cmd
}

func (c *cli) createOuterCmd() *cobra.Command {
	var ev eventFlags
	cmd := &cobra.Command{
		Use:     "create-outer <json>",
		Short:   "Store an Outer record given as JSON text",
		Example: `  registryctl create-outer '{"id":"222","inner":{...},"my_inner":{...},"extensions":{}}'`,
		Args:    cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			eventID := ev.resolve()
			if err := c.reg.CreateOuterText(cmd.Context(), args[0], eventID); err != nil {
				return err
			}
			printCreated(cmd, eventID)
			return nil
		}),
	}
	ev.register(cmd)
	return cmd
}

func (c *cli) getInnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-inner <id>",
		Short: "Print the Inner record stored under id",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			inner, err := c.reg.GetInner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			text, err := codec.EncodeInner(inner)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}),
	}
}

func (c *cli) getOuterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-outer <id>",
		Short: "Print the Outer record stored under id",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			outer, err := c.reg.GetOuter(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			text, err := codec.EncodeOuter(outer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}),
	}
}

func (c *cli) eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List persisted StructCreated notifications (sqlite backend)",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, _ []string) error {
			events, err := c.reg.Events(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, evt := range events {
				if err := enc.Encode(evt); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func shapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Describe a shape",
	}

	var radius int64
	circle := &cobra.Command{
		Use:   "circle",
		Short: "Describe a circle",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), structregistry.DetermineShape(shape.Circle{Radius: radius}))
		},
	}
	circle.Flags().Int64Var(&radius, "radius", 0, "circle radius")
	_ = circle.MarkFlagRequired("radius")

	var x, y int64
	rectangle := &cobra.Command{
		Use:   "rectangle",
		Short: "Describe a rectangle",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), structregistry.DetermineShape(shape.Rectangle{X: x, Y: y}))
		},
	}
	rectangle.Flags().Int64Var(&x, "x", 0, "first dimension")
	rectangle.Flags().Int64Var(&y, "y", 0, "second dimension")
	_ = rectangle.MarkFlagRequired("x")
	_ = rectangle.MarkFlagRequired("y")

	cmd.AddCommand(circle, rectangle)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := structregistry.GetVersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "structregistry registryctl version %s\n", info.Version)
			fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
		},
	}
}

func printCreated(cmd *cobra.Command, eventID *string) {
	if eventID != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "ok event_id=%s\n", *eventID)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
}
