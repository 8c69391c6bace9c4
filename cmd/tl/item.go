package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfaure/tasklist/internal/editor"
	internalstrings "github.com/jfaure/tasklist/internal/strings"
	"github.com/jfaure/tasklist/list"
	"github.com/jfaure/tasklist/liststore"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage items within a list",
}

// item add
var itemAddCmd = &cobra.Command{
	Use:   "add <list> [title]",
	Short: "Add an item to a list",
	Long: `Add an item to a list.

When running interactively without a title, opens $EDITOR on a TOML
representation of the new item. Use --no-edit to require flags only, or
--edit to force the editor.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runItemAdd,
}

var (
	itemAddDescription string
	itemAddPriority    string
	itemAddDue         string
	itemAddStatus      string
	itemAddEdit        bool
	itemAddNoEdit      bool
)

// item update
var itemUpdateCmd = &cobra.Command{
	Use:   "update <list> <id>",
	Short: "Update an item",
	Long: `Update an item.

When running interactively with no update flags, opens $EDITOR on a TOML
representation of the item. Use --no-edit to skip the editor.`,
	Args: cobra.ExactArgs(2),
	RunE: runItemUpdate,
}

var (
	itemUpdateTitle       string
	itemUpdateDescription string
	itemUpdateStatus      string
	itemUpdatePriority    string
	itemUpdateDue         string
	itemUpdateClearDue    bool
	itemUpdateEdit        bool
	itemUpdateNoEdit      bool
)

// item remove
var itemRemoveCmd = &cobra.Command{
	Use:   "remove <list> <id>",
	Short: "Remove an item from a list",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemRemove,
}

// item toggle
var itemToggleCmd = &cobra.Command{
	Use:   "toggle <list> <id>",
	Short: "Toggle an item between done and todo",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemToggle,
}

// item done
var itemDoneCmd = &cobra.Command{
	Use:   "done <list> <id>",
	Short: "Mark an item as done",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemDone,
}

// item show
var itemShowCmd = &cobra.Command{
	Use:   "show <list> <id>",
	Short: "Show detailed information about an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemShow,
}

var itemShowJSON bool

func init() {
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemAddCmd, itemUpdateCmd, itemRemoveCmd, itemToggleCmd, itemDoneCmd, itemShowCmd)

	itemAddCmd.Flags().StringVarP(&itemAddDescription, "description", "d", "", "Description")
	itemAddCmd.Flags().StringVarP(&itemAddPriority, "priority", "p", "", "Priority (low, medium, high, critical)")
	itemAddCmd.Flags().StringVar(&itemAddDue, "due", "", "Due date (YYYY-MM-DD)")
	itemAddCmd.Flags().StringVar(&itemAddStatus, "status", "", "Initial status (todo, in_progress, waiting, done)")
	itemAddCmd.Flags().BoolVarP(&itemAddEdit, "edit", "e", false, "Open $EDITOR (default when interactive and no title given)")
	itemAddCmd.Flags().BoolVar(&itemAddNoEdit, "no-edit", false, "Do not open $EDITOR")

	itemUpdateCmd.Flags().StringVar(&itemUpdateTitle, "title", "", "New title")
	itemUpdateCmd.Flags().StringVarP(&itemUpdateDescription, "description", "d", "", "New description")
	itemUpdateCmd.Flags().StringVar(&itemUpdateStatus, "status", "", "New status (todo, in_progress, waiting, done)")
	itemUpdateCmd.Flags().StringVarP(&itemUpdatePriority, "priority", "p", "", "New priority (low, medium, high, critical)")
	itemUpdateCmd.Flags().StringVar(&itemUpdateDue, "due", "", "New due date (YYYY-MM-DD)")
	itemUpdateCmd.Flags().BoolVar(&itemUpdateClearDue, "clear-due", false, "Clear the due date")
	itemUpdateCmd.Flags().BoolVarP(&itemUpdateEdit, "edit", "e", false, "Open $EDITOR (default when interactive and no flags given)")
	itemUpdateCmd.Flags().BoolVar(&itemUpdateNoEdit, "no-edit", false, "Do not open $EDITOR")
	itemUpdateCmd.MarkFlagsMutuallyExclusive("due", "clear-due")

	itemShowCmd.Flags().BoolVar(&itemShowJSON, "json", false, "Output as JSON")
}

func loadListArg(identifier string) (*liststore.Store, *list.List, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	l, err := store.Load(identifier)
	if err != nil {
		return nil, nil, err
	}
	return store, l, nil
}

func parseItemID(value string) (uint64, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", value)
	}
	return id, nil
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	store, l, err := loadListArg(args[0])
	if err != nil {
		return err
	}

	var title string
	if len(args) > 1 {
		title = internalstrings.NormalizeWhitespace(args[1])
	}

	useEditor := itemAddEdit || (title == "" && editor.IsInteractive())
	if itemAddNoEdit {
		useEditor = false
	}

	var opts list.AddOptions
	if useEditor {
		data := editor.DefaultAddData(defaultPriority())
		data.Title = title
		parsed, err := editor.EditItem(data, cfg.Editor)
		if err != nil {
			return err
		}
		title = parsed.Title
		opts = parsed.ToAddOptions()
	} else {
		if title == "" {
			return fmt.Errorf("title is required (or run interactively with --edit)")
		}
		opts = list.AddOptions{Description: itemAddDescription}

		opts.Priority = defaultPriority()
		if itemAddPriority != "" {
			priority, err := list.ParsePriority(itemAddPriority)
			if err != nil {
				return err
			}
			opts.Priority = priority
		}
		if itemAddStatus != "" {
			status, err := list.ParseStatus(itemAddStatus)
			if err != nil {
				return err
			}
			opts.Status = status
		}
		if itemAddDue != "" {
			due, err := list.ParseDate(itemAddDue)
			if err != nil {
				return err
			}
			opts.DueDate = &due
		}
	}

	item, err := l.Add(title, opts, time.Now())
	if err != nil {
		return err
	}
	if err := store.Save(l); err != nil {
		return err
	}

	fmt.Printf("Added item %d to %q\n", item.ID, l.Name)
	return nil
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	store, l, err := loadListArg(args[0])
	if err != nil {
		return err
	}
	id, err := parseItemID(args[1])
	if err != nil {
		return err
	}

	item, ok := l.Find(id)
	if !ok {
		return fmt.Errorf("%w: %d", list.ErrItemNotFound, id)
	}

	hasFlags := anyFlagChanged(cmd.Flags(),
		"title", "description", "status", "priority", "due", "clear-due")

	useEditor := itemUpdateEdit || (!hasFlags && editor.IsInteractive())
	if itemUpdateNoEdit {
		useEditor = false
	}

	now := time.Now()
	if useEditor {
		parsed, err := editor.EditItem(editor.DataFromItem(item), cfg.Editor)
		if err != nil {
			return err
		}
		if _, err := l.SetTitle(id, parsed.Title, now); err != nil {
			return err
		}
		if _, err := l.SetDescription(id, parsed.Description, now); err != nil {
			return err
		}
		if _, err := l.SetPriority(id, list.Priority(parsed.Priority), now); err != nil {
			return err
		}
		if _, err := l.SetDueDate(id, parsed.DueDate(), now); err != nil {
			return err
		}
		if parsed.Status != nil {
			if _, err := l.SetStatus(id, list.Status(*parsed.Status), now); err != nil {
				return err
			}
		}
	} else {
		if !hasFlags {
			return fmt.Errorf("nothing to update (pass flags or run interactively with --edit)")
		}
		if itemUpdateTitle != "" {
			if _, err := l.SetTitle(id, internalstrings.NormalizeWhitespace(itemUpdateTitle), now); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("description") {
			if _, err := l.SetDescription(id, itemUpdateDescription, now); err != nil {
				return err
			}
		}
		if itemUpdateStatus != "" {
			status, err := list.ParseStatus(itemUpdateStatus)
			if err != nil {
				return err
			}
			if _, err := l.SetStatus(id, status, now); err != nil {
				return err
			}
		}
		if itemUpdatePriority != "" {
			priority, err := list.ParsePriority(itemUpdatePriority)
			if err != nil {
				return err
			}
			if _, err := l.SetPriority(id, priority, now); err != nil {
				return err
			}
		}
		if itemUpdateClearDue {
			if _, err := l.SetDueDate(id, nil, now); err != nil {
				return err
			}
		} else if itemUpdateDue != "" {
			due, err := list.ParseDate(itemUpdateDue)
			if err != nil {
				return err
			}
			if _, err := l.SetDueDate(id, &due, now); err != nil {
				return err
			}
		}
	}

	if err := store.Save(l); err != nil {
		return err
	}

	fmt.Printf("Updated item %d in %q\n", id, l.Name)
	return nil
}

func runItemRemove(cmd *cobra.Command, args []string) error {
	store, l, err := loadListArg(args[0])
	if err != nil {
		return err
	}
	id, err := parseItemID(args[1])
	if err != nil {
		return err
	}

	if err := l.Remove(id, time.Now()); err != nil {
		return err
	}
	if err := store.Save(l); err != nil {
		return err
	}

	fmt.Printf("Removed item %d from %q\n", id, l.Name)
	return nil
}

func runItemToggle(cmd *cobra.Command, args []string) error {
	store, l, err := loadListArg(args[0])
	if err != nil {
		return err
	}
	id, err := parseItemID(args[1])
	if err != nil {
		return err
	}

	item, err := l.Toggle(id, time.Now())
	if err != nil {
		return err
	}
	if err := store.Save(l); err != nil {
		return err
	}

	fmt.Printf("Item %d is now %s\n", item.ID, item.Status)
	return nil
}

func runItemDone(cmd *cobra.Command, args []string) error {
	store, l, err := loadListArg(args[0])
	if err != nil {
		return err
	}
	id, err := parseItemID(args[1])
	if err != nil {
		return err
	}

	item, err := l.SetStatus(id, list.StatusDone, time.Now())
	if err != nil {
		return err
	}
	if err := store.Save(l); err != nil {
		return err
	}

	fmt.Printf("Item %d is now %s\n", item.ID, item.Status)
	return nil
}

func runItemShow(cmd *cobra.Command, args []string) error {
	_, l, err := loadListArg(args[0])
	if err != nil {
		return err
	}
	id, err := parseItemID(args[1])
	if err != nil {
		return err
	}

	item, ok := l.Find(id)
	if !ok {
		return fmt.Errorf("%w: %d", list.ErrItemNotFound, id)
	}

	if itemShowJSON {
		return encodeJSONToStdout(item)
	}

	printItemDetail(*item, list.Today(time.Now()))
	return nil
}
