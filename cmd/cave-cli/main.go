package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cavewriter/go-sdk/pkg/encoding"
	"github.com/cavewriter/go-sdk/pkg/timeline"
)

var rootCmd = &cobra.Command{
	Use:   "cave-cli",
	Short: "Inspect and normalize Story project files",
	Long: `cave-cli works with Story project files, the XML documents that describe
timelines of actions in a virtual space.

Use "validate" to check a file and summarize its timelines, or "fmt" to
re-emit a file as normalized, indented XML.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("CAVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Int("indent", encoding.DefaultIndent, "indentation width for XML output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("indent", rootCmd.PersistentFlags().Lookup("indent"))
}

func registerCommands() {
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(fmtCmd())
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a Story file and summarize its timelines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := loadStory(args[0])
			if err != nil {
				return err
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Timeline", "Start Immediately", "Actions", "Span (s)"})
			for _, tl := range story.Timelines {
				tw.AppendRow(table.Row{
					timelineName(tl),
					startImmediately(tl),
					len(tl.Entries()),
					span(tl),
				})
			}
			tw.Render()
			fmt.Printf("%s: OK (%d timelines)\n", args[0], len(story.Timelines))
			return nil
		},
	}
	return cmd
}

func fmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a Story file as normalized XML on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := loadStory(args[0])
			if err != nil {
				return err
			}
			return story.EncodeIndent(os.Stdout, viper.GetInt("indent"))
		},
	}
	return cmd
}

func loadStory(path string) (*encoding.Story, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	logrus.WithField("file", path).Debug("Decoding story")
	return encoding.DecodeStory(f)
}

func timelineName(tl *timeline.Timeline) string {
	name, ok := tl.Lookup("name")
	if !ok {
		return ""
	}
	return name.(string)
}

func startImmediately(tl *timeline.Timeline) bool {
	start, err := tl.Get("start_immediately")
	if err != nil {
		return true
	}
	return start.(bool)
}

func span(tl *timeline.Timeline) float64 {
	entries := tl.Entries()
	if len(entries) == 0 {
		return 0
	}
	return entries[len(entries)-1].Seconds
}
