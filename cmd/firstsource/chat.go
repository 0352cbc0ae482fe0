package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/firstsource-health/firstsource-core/internal/application/handlers"
	"github.com/firstsource-health/firstsource-core/internal/domain/services"
)

const assistantName = "DocGPT"

func newChatCmd() *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the health assistant",
		Long: `Starts an interactive session with the scripted health assistant.
The assistant gives general information only and is not a substitute for medical advice.
Type "exit" or "quit" (or press Ctrl-D) to leave; the conversation is not saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("delay") {
				delay = appConfig.Chat.ReplyDelay
			}
			conversation := handlers.NewChatHandler(services.DefaultResponder()).NewConversation()
			return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), conversation, delay)
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", 0, "Pause before each reply (default from chat.reply_delay)")

	return cmd
}

// runChat reads messages line by line until EOF, an exit command or ctx is done.
func runChat(ctx context.Context, in io.Reader, out io.Writer, conversation *services.Conversation, delay time.Duration) error {
	turns := conversation.Turns()
	fmt.Fprintf(out, "%s: %s\n\n", assistantName, turns[len(turns)-1].Text)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if slices.Contains(chatExitCommands, strings.ToLower(strings.TrimSpace(line))) {
			return nil
		}

		_, reply, _, ok := conversation.Send(line)
		if !ok {
			continue
		}

		if err := pause(ctx, delay); err != nil {
			fmt.Fprintln(out)
			return nil
		}
		fmt.Fprintf(out, "%s: %s\n\n", assistantName, reply.Text)
	}
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
