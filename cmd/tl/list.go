package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	internalstrings "github.com/jfaure/tasklist/internal/strings"
	"github.com/jfaure/tasklist/list"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage task lists",
}

// list create
var listCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new empty list",
	Args:  cobra.ExactArgs(1),
	RunE:  runListCreate,
}

// list ls
var listLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all saved lists",
	Args:  cobra.NoArgs,
	RunE:  runListLs,
}

var listLsJSON bool

// list show
var listShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a list's items in display order",
	Args:  cobra.ExactArgs(1),
	RunE:  runListShow,
}

var listShowJSON bool

// list delete
var listDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a list and its stored file",
	Args:  cobra.ExactArgs(1),
	RunE:  runListDelete,
}

var listDeleteForce bool

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listCreateCmd, listLsCmd, listShowCmd, listDeleteCmd)

	listLsCmd.Flags().BoolVar(&listLsJSON, "json", false, "Output as JSON")
	listShowCmd.Flags().BoolVar(&listShowJSON, "json", false, "Output as JSON")
	listDeleteCmd.Flags().BoolVarP(&listDeleteForce, "force", "f", false, "Delete without confirmation")
}

func runListCreate(cmd *cobra.Command, args []string) error {
	name := internalstrings.NormalizeWhitespace(args[0])

	store, err := openStore()
	if err != nil {
		return err
	}
	if store.Exists(name) {
		return fmt.Errorf("list %q already exists", name)
	}

	l, err := list.New(name, time.Now())
	if err != nil {
		return err
	}
	if err := store.Save(l); err != nil {
		return err
	}

	fmt.Printf("Created list %q\n", name)
	return nil
}

func runListLs(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	identifiers, err := store.Identifiers()
	if err != nil {
		return err
	}

	if listLsJSON {
		return encodeJSONToStdout(identifiers)
	}
	if len(identifiers) == 0 {
		fmt.Println("No lists found.")
		return nil
	}

	fmt.Print(formatListTable(store, identifiers))
	return nil
}

func runListShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	l, err := store.Load(args[0])
	if err != nil {
		return err
	}

	if listShowJSON {
		return encodeJSONToStdout(l)
	}

	now := time.Now()
	fmt.Printf("%s (%d items)\n", l.Name, l.Len())
	printItemTable(list.SortForDisplay(l.Items), list.Today(now))
	return nil
}

func runListDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	identifier := args[0]
	if !store.Exists(identifier) {
		return fmt.Errorf("list %q not found", identifier)
	}

	if !listDeleteForce {
		confirmed, err := confirm(fmt.Sprintf("Delete list %q?", identifier))
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("not deleting %q (use --force to skip confirmation)", identifier)
		}
	}

	if err := store.Delete(identifier); err != nil {
		return err
	}

	fmt.Printf("Deleted list %q\n", identifier)
	return nil
}
