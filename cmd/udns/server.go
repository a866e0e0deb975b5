package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "List the accounts of the authenticated user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		accounts, err := client.AccountDetails(cmd.Context())
		if err != nil {
			return err
		}
		for _, account := range accounts.Accounts {
			fmt.Printf("%s\t%s\n", account.AccountName, account.AccountType)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of the REST API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		status, err := client.Status(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(status)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the REST API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		version, err := client.Version(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd, statusCmd, versionCmd)
}
