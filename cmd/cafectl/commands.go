package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func commandContext(cmd *cobra.Command, v *viper.Viper) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), v.GetDuration("timeout"))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLoginCmd(v *viper.Viper) *cobra.Command {
	var (
		username string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as the cafe admin",
		Long:  `Reads the password from stdin and prints the session token. With --save the token is written to the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && err != io.EOF {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimRight(password, "\r\n")

			ctx, cancel := commandContext(cmd, v)
			defer cancel()

			session, err := newClientFrom(v).Login(ctx, username, password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if save {
				path, err := saveToken(v, session.Token)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "logged in as %s until %s, token saved to %s\n", session.Username, session.ExpiresAt.Format("2006-01-02 15:04"), path)
				return nil
			}

			fmt.Fprintln(out, session.Token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "admin username")
	cmd.Flags().BoolVar(&save, "save", false, "store the token in the config file")

	return cmd
}

func newOrdersCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List and manage orders",
	}

	cmd.AddCommand(newOrdersListCmd(v), newOrdersStatusCmd(v), newOrdersHistoryCmd(v))
	return cmd
}

func newOrdersListCmd(v *viper.Viper) *cobra.Command {
	var (
		status string
		search string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, v)
			defer cancel()

			raw, orders, err := newClientFrom(v).ListOrders(ctx, status, search, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if v.GetBool("json") {
				_, err := fmt.Fprintln(out, string(raw))
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCUSTOMER\tPHONE\tTOTAL\tSTATUS\tPLACED")
			for _, o := range orders {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\t%s\n", o.ID, o.CustomerName, o.CustomerPhone, o.Total, o.Status, o.CreatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, preparing, completed, rejected)")
	cmd.Flags().StringVarP(&search, "query", "q", "", "search customer name or order id")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of orders")

	return cmd
}

func newOrdersStatusCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Move an order to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, v)
			defer cancel()

			order, err := newClientFrom(v).UpdateOrderStatus(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			if v.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), order)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s is now %s\n", order.ID, order.Status)
			return nil
		},
	}
}

func newOrdersHistoryCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "history <order-id>",
		Short: "Show the status audit trail of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, v)
			defer cancel()

			entries, err := newClientFrom(v).OrderHistory(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if v.GetBool("json") {
				return printJSON(out, entries)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tEVENT\tFROM\tTO\tACTOR")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.EventType, e.OldStatus, e.NewStatus, e.Actor)
			}
			return tw.Flush()
		},
	}
}

func newMenuCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Inspect and import the menu",
	}

	cmd.AddCommand(newMenuListCmd(v), newMenuImportCmd(v))
	return cmd
}

func newMenuListCmd(v *viper.Viper) *cobra.Command {
	var (
		category string
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menu items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, v)
			defer cancel()

			items, err := newClientFrom(v).ListMenu(ctx, category, search)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if v.GetBool("json") {
				return printJSON(out, items)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%d\n", it.ID, it.Name, it.Category, it.Price, it.Stock)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	cmd.Flags().StringVarP(&search, "query", "q", "", "search item names")

	return cmd
}

func newMenuImportCmd(v *viper.Viper) *cobra.Command {
	var (
		readRange string
		taskID    string
	)

	cmd := &cobra.Command{
		Use:   "import [spreadsheet-id]",
		Short: "Replace the menu with a Google spreadsheet, or check an import with --task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, v)
			defer cancel()

			client := newClientFrom(v)
			out := cmd.OutOrStdout()

			if taskID != "" {
				task, err := client.ImportTask(ctx, taskID)
				if err != nil {
					return err
				}
				if v.GetBool("json") {
					return printJSON(out, task)
				}
				fmt.Fprintf(out, "task %s: %s, %d items", task.ID, task.Status, task.ItemCount)
				if task.Error != "" {
					fmt.Fprintf(out, " (%s)", task.Error)
				}
				fmt.Fprintln(out)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("spreadsheet id is required")
			}

			task, err := client.ImportMenu(ctx, args[0], readRange)
			if err != nil {
				return err
			}
			if v.GetBool("json") {
				return printJSON(out, task)
			}
			fmt.Fprintf(out, "import task %s %s\n", task.TaskID, task.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&readRange, "range", "", "sheet range to read (default A:M)")
	cmd.Flags().StringVar(&taskID, "task", "", "show the state of an import task instead")

	return cmd
}
