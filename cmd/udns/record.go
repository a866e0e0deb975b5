package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	udns "github.com/ultradns/udns-go"
)

var recordType string

var recordsCmd = &cobra.Command{
	Use:   "records <zone>",
	Short: "List the records of a zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		var records []udns.RRSet
		if recordType != "" {
			records, err = client.RecordsByType(cmd.Context(), args[0], recordType)
		} else {
			records, err = client.Records(cmd.Context(), args[0])
		}
		if err != nil {
			return err
		}

		for _, rr := range records {
			fmt.Printf("%s\t%s\t%d\t%s\n", rr.OwnerName, rr.RRType, rr.TTL, strings.Join(rr.RData, " "))
		}
		return nil
	},
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Manage a single record",
}

var recordTTL int

var recordCreateCmd = &cobra.Command{
	Use:   "create <zone> <type> <owner> <rdata>...",
	Short: "Create a record",
	Args:  cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		return client.CreateRecord(cmd.Context(), args[0], args[1], args[2], recordTTL, args[3:]...)
	},
}

var recordDeleteCmd = &cobra.Command{
	Use:   "delete <zone> <type> <owner>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		return client.DeleteRecord(cmd.Context(), args[0], args[1], args[2])
	},
}

func init() {
	recordsCmd.Flags().StringVar(&recordType, "type", "", "restrict the listing to one record type")
	recordCreateCmd.Flags().IntVar(&recordTTL, "ttl", 0, "TTL for the record (0 leaves the server default)")
	recordCmd.AddCommand(recordCreateCmd, recordDeleteCmd)
	rootCmd.AddCommand(recordsCmd, recordCmd)
}
