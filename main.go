// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cybrota/structviz/commands"
	"github.com/cybrota/structviz/structures"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startSession loads config and logging the same way for every subcommand.
func startSession() (*Session, *Config, func()) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		def := defaultConfig()
		config = &def
	}

	logger, closeLog, err := NewLogger(config.Log)
	if err != nil {
		log.Printf("Failed to open log file: %v. Logging disabled.", err)
		logger, closeLog = zap.NewNop().Sugar(), func() {}
	}

	session, err := NewSession(config, logger)
	if err != nil {
		log.Fatalf("Error creating session: %v", err)
	}
	return session, config, closeLog
}

func runUI(mode string) error {
	session, config, closeLog := startSession()
	defer closeLog()

	if mode != "" {
		kind, err := kindFlag(mode)
		if err != nil {
			return err
		}
		if err := session.Switch(kind); err != nil {
			return err
		}
	}

	topics, err := NewTopicRenderer(NewTopicCache(), "")
	if err != nil {
		log.Fatalf("Error loading topics: %v", err)
	}
	return runBubbleTeaApp(session, config, topics)
}

func writeSnapshots(w io.Writer, session *Session, kinds []structures.Kind, format string) error {
	f, err := ParseExportFormat(format)
	if err != nil {
		return err
	}
	export, err := session.Export(kinds)
	if err != nil {
		return err
	}
	return WriteExport(w, export, f, RenderOptions{ShowHeights: true})
}

func main() {
	asciiLogo := `
███████╗████████╗██████╗ ██╗   ██╗ ██████╗████████╗██╗   ██╗██╗███████╗
██╔════╝╚══██╔══╝██╔══██╗██║   ██║██╔════╝╚══██╔══╝██║   ██║██║╚══███╔╝
███████╗   ██║   ██████╔╝██║   ██║██║        ██║   ██║   ██║██║  ███╔╝
╚════██║   ██║   ██╔══██╗██║   ██║██║        ██║   ╚██╗ ██╔╝██║ ███╔╝
███████║   ██║   ██║  ██║╚██████╔╝╚██████╗   ██║    ╚████╔╝ ██║███████╗
╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝  ╚═════╝   ╚═╝     ╚═══╝  ╚═╝╚══════╝
Interactive terminal visualizer for classic data structures [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches structviz UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run command opens the structviz UI on the configured structure`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, _ := cmd.Flags().GetString("mode")
			return runUI(mode)
		},
	}
	cmdRun.Flags().String("mode", "", "structure to open first ("+kindNames()+")")

	var cmdApply = &cobra.Command{
		Use:   "apply KIND COMMAND...",
		Short: "Apply commands to a fresh structure and print it",
		Long: fmt.Sprintf("%s\n%s", asciiLogo,
			"Apply runs each quoted command against a fresh structure, e.g.\n  structviz apply avl \"insert 1 2 3\" \"find 3\""),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindFlag(args[0])
			if err != nil {
				return err
			}
			session, _, closeLog := startSession()
			defer closeLog()

			for _, line := range args[1:] {
				res, err := session.Apply(kind, line)
				if err != nil {
					return fmt.Errorf("%q: %w", line, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%s› %s%s %s\n", Info, line, Reset, res.Message)
			}
			format, _ := cmd.Flags().GetString("format")
			return writeSnapshots(cmd.OutOrStdout(), session, []structures.Kind{kind}, format)
		},
	}
	cmdApply.Flags().String("format", string(FormatText), "output format: text, yaml, json or cbor")

	var cmdReplay = &cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a YAML script of commands",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Replay runs every step of a YAML script and prints each touched structure"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := LoadScript(args[0])
			if err != nil {
				return err
			}
			session, _, closeLog := startSession()
			defer closeLog()

			touched, replayErr := session.Replay(script, cmd.ErrOrStderr())
			format, _ := cmd.Flags().GetString("format")
			if len(touched) > 0 {
				if err := writeSnapshots(cmd.OutOrStdout(), session, touched, format); err != nil {
					return err
				}
			}
			return replayErr
		},
	}
	cmdReplay.Flags().String("format", string(FormatText), "output format: text, yaml, json or cbor")

	var cmdTopics = &cobra.Command{
		Use:   "topics [KIND]",
		Short: "Print the reference card of one or every structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := commands.NewDispatcher(commands.DefaultOptions())
			if err != nil {
				return err
			}
			renderer, err := NewTopicRenderer(NewTopicCache(), "")
			if err != nil {
				return err
			}

			kinds := d.Kinds()
			if len(args) == 1 {
				kind, err := kindFlag(args[0])
				if err != nil {
					return err
				}
				kinds = []structures.Kind{kind}
			}
			for _, kind := range kinds {
				h, _ := d.Handler(kind)
				doc, err := renderer.Render(kind, 80, h.Usage())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), doc)
			}
			return nil
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print structviz usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the structviz CLI usage guide`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := commands.NewDispatcher(commands.DefaultOptions())
			if err != nil {
				return err
			}
			fmt.Println(getHelpMessage(d))
			return nil
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show (and create if missing) the configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print structviz version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "structviz",
		Version: version,
		Long:    asciiLogo,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to run command when no subcommand is provided
			return runUI("")
		},
	}
	rootCmd.AddCommand(cmdRun, cmdApply, cmdReplay, cmdTopics, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
