/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command registryctl creates and looks up records in a struct registry.
package main

import (
	"context"
	"fmt"
	"os"

	regerrors "github.com/suparena/structregistry/errors"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if code := regerrors.Code(err); code != "" {
			fmt.Fprintf(os.Stderr, "%s: %v\n", code, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
