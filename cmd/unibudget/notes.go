package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/unibudget/internal/cli"
	"github.com/Veraticus/unibudget/internal/common"
	"github.com/spf13/cobra"
)

// noteTimeLayout formats note times in `unibudget notes list`.
const noteTimeLayout = "02 Jan 2006 15:04"

func (a *app) notesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage notes",
		Long:  `List, add and delete free-form notes.`,
	}

	cmd.AddCommand(a.listNotesCmd())
	cmd.AddCommand(a.addNoteCmd())
	cmd.AddCommand(a.deleteNoteCmd())

	return cmd
}

func (a *app) listNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, cleanup, err := a.openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			notes := tr.Snapshot().Notes
			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				writeLine(out, cli.FormatInfo("No notes yet. Use 'unibudget notes add' to write one."))
				return nil
			}

			for _, n := range notes {
				writeLine(out, cli.FormatHeading(cli.NoteIcon, n.Title))
				fmt.Fprintf(out, "  %s · %s\n", n.ID, n.Time().Local().Format(noteTimeLayout))
				if n.Content != "" {
					for _, line := range strings.Split(n.Content, "\n") {
						writeLine(out, "  "+line)
					}
				}
				writeLine(out)
			}
			return nil
		},
	}
}

func (a *app) addNoteCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Write a note",
		Example: `  unibudget notes add "Rent" --content "Due on the 1st"
  unibudget notes add "" -m "untitled reminder"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tr, cleanup, err := a.openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			note, ok := tr.AddNote(ctx, args[0], content)
			if !ok {
				return common.NewUserError("A note needs a title or some content", common.ErrInvalidInput)
			}
			if err := checkPersist(tr); err != nil {
				return err
			}

			writeLine(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Saved note %q (%s)", note.Title, note.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "m", "", "note body")

	return cmd
}

func (a *app) deleteNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tr, cleanup, err := a.openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !tr.DeleteNote(ctx, args[0]) {
				return common.NewUserError(fmt.Sprintf("No note with id %q", args[0]), common.ErrNotFound)
			}
			if err := checkPersist(tr); err != nil {
				return err
			}

			writeLine(cmd.OutOrStdout(), cli.FormatSuccess("Deleted note "+args[0]))
			return nil
		},
	}
}
