package docchat

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hibiki-ai/docagent/internal/docagent/options"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
)

// defaultQuestion is the suggested starter question shown in the banner.
const defaultQuestion = "What can Bedrock AgentCore do? Check the AWS documentation."

var chatExample = heredoc.Doc(`
	# Interactive mode: ask questions one at a time
	docchat

	# Single question mode: answer once and exit
	docchat "What is the maximum size of an S3 object?"

	# Use a different documentation tool server
	MCP_SERVER_PACKAGE=awslabs.aws-documentation-mcp-server@latest docchat
`)

// NewDocChatCommand builds the root command of the interactive frontend.
func NewDocChatCommand() *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:   "docchat [question]",
		Short: "Ask AWS documentation questions from the terminal",
		Long: heredoc.Doc(`
			docchat answers AWS documentation questions with an LLM agent that
			consults the AWS documentation tool server.

			Without arguments it starts an interactive loop. With a question
			argument it answers once and exits. Every question opens a fresh
			tool-server connection, which is closed when the answer is done.
		`),
		Example:       chatExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.InitLog(""); err != nil {
				return err
			}
			defer logger.FlushLog()

			renderer := NewRenderer(cmd.OutOrStdout())
			session := NewSession(opts, renderer)

			if len(args) > 0 {
				return runOnce(cmd.Context(), session, strings.Join(args, " "))
			}
			return runInteractive(cmd.Context(), session, renderer)
		},
	}

	opts.AzureOptions.AddFlags(cmd.Flags())
	opts.MCPOptions.AddFlags(cmd.Flags())

	return cmd
}

func runOnce(ctx context.Context, session *Session, question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("please enter a message")
	}
	return session.Ask(ctx, question)
}

func runInteractive(ctx context.Context, session *Session, renderer *Renderer) error {
	printBanner(session)

	scanner := bufio.NewScanner(os.Stdin)
	prompt := color.New(color.Bold, color.FgHiYellow).Sprint("> ")

	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			renderer.Error("Please enter a message.")
			continue
		case "/quit", "/exit":
			return nil
		}

		// Failures are already rendered; the loop keeps going so the user
		// can fix the input or the environment and retry.
		_ = session.Ask(ctx, input)
	}
}

func printBanner(session *Session) {
	bold := color.New(color.Bold)
	bold.Println("AWS Documentation Chat")
	fmt.Println()
	fmt.Printf("  Tool server: %s\n", session.opts.MCPOptions.Package)
	if missing := session.opts.AzureOptions.Missing(); len(missing) > 0 {
		color.New(color.FgRed).Printf("  Missing configuration: %s\n", strings.Join(missing, ", "))
	}
	fmt.Println()
	fmt.Println("  Type a question and press Enter")
	fmt.Printf("  Try: %q\n", defaultQuestion)
	fmt.Println("  /quit - exit")
	fmt.Println()
}
