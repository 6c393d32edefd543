// Command sgdemo renders and inspects sg scenes.
//
// Without a scene file it renders a built-in demo:
//
//	sgdemo render -o demo.png
//	sgdemo render scene.toml -o scene.png --log-level debug
//	sgdemo hit scene.yaml 120 80
//	sgdemo dump scene.toml
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/sg"
	"github.com/gogpu/sg/uithread"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:          "sgdemo",
		Short:        "Render and inspect sg scene graphs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd.ErrOrStderr(), level)
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warn", "log level: debug, info, warn or error")
	root.AddCommand(newRenderCmd(), newHitCmd(), newDumpCmd())
	return root
}

// setupLogging routes sg logging to w as text.
func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	sg.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// sceneFrom loads the scene named by the first argument, or the demo.
func sceneFrom(args []string) (*Scene, error) {
	if len(args) == 0 {
		return demoScene(), nil
	}
	return LoadScene(args[0])
}

// withLoop runs f with a UI loop that is closed afterwards.
func withLoop(f func(loop *uithread.Loop) error) error {
	loop := uithread.NewLoop()
	defer loop.Close()
	return f(loop)
}

func newRenderCmd() *cobra.Command {
	var (
		output        string
		width, height int
		noAA          bool
	)
	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a scene to a PNG file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := sceneFrom(args)
			if err != nil {
				return err
			}
			if width > 0 {
				sc.Width = width
			}
			if height > 0 {
				sc.Height = height
			}
			if noAA {
				sc.AntiAlias = ptr(false)
			}
			return withLoop(func(loop *uithread.Loop) error {
				cv, err := buildCanvas(cmd.Context(), sc, loop)
				if err != nil {
					return err
				}
				if err := cv.SavePNG(output); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%dx%d, %d shapes)\n",
					output, cv.Width(), cv.Height(), cv.Root().ElementCount())
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "demo.png", "output file")
	cmd.Flags().IntVar(&width, "width", 0, "override the scene width")
	cmd.Flags().IntVar(&height, "height", 0, "override the scene height")
	cmd.Flags().BoolVar(&noAA, "no-antialias", false, "paint without anti-aliasing")
	return cmd
}

func newHitCmd() *cobra.Command {
	var bottom bool
	cmd := &cobra.Command{
		Use:   "hit [scene] x y",
		Short: "Print the shape at a point",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := len(args)
			x, err := strconv.ParseFloat(args[n-2], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[n-1], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			sc, err := sceneFrom(args[:n-2])
			if err != nil {
				return err
			}
			return withLoop(func(loop *uithread.Loop) error {
				cv, err := buildCanvas(cmd.Context(), sc, loop)
				if err != nil {
					return err
				}
				hit := cv.Root().TopElementAt(x, y)
				if bottom {
					hit = cv.Root().ElementAt(x, y)
				}
				if hit == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "nothing")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), hit)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&bottom, "bottom", false, "report the back-most shape instead of the front-most")
	return cmd
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [scene]",
		Short: "Print the shape tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := sceneFrom(args)
			if err != nil {
				return err
			}
			return withLoop(func(loop *uithread.Loop) error {
				cv, err := buildCanvas(cmd.Context(), sc, loop)
				if err != nil {
					return err
				}
				dump(cmd.OutOrStdout(), cv.Root(), 0)
				return nil
			})
		},
	}
}

func dump(w io.Writer, c *sg.Compound, depth int) {
	for _, s := range c.Elements() {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), s)
		if sub, ok := s.(*sg.Compound); ok {
			dump(w, sub, depth+1)
		}
	}
}
