package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones <account>",
	Short: "List the zones of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		list, err := client.ZonesOfAccount(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, zone := range list.Zones {
			fmt.Printf("%s\t%s\t%d records\n",
				zone.Properties.Name, zone.Properties.Type, zone.Properties.ResourceRecordCount)
		}
		return nil
	},
}

var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Manage a single zone",
}

var zoneCreateCmd = &cobra.Command{
	Use:   "create <zone>",
	Short: "Create a new primary zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		return client.CreatePrimaryZone(cmd.Context(), args[0])
	},
}

var zoneGetCmd = &cobra.Command{
	Use:   "get <zone>",
	Short: "Show zone metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		zone, err := client.ZoneMetadata(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		p := zone.Properties
		fmt.Printf("name: %s\naccount: %s\ntype: %s\nstatus: %s\nrecords: %d\n",
			p.Name, p.AccountName, p.Type, p.Status, p.ResourceRecordCount)
		return nil
	},
}

var zoneDeleteCmd = &cobra.Command{
	Use:   "delete <zone>",
	Short: "Delete a zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		return client.DeleteZone(cmd.Context(), args[0])
	},
}

func init() {
	zoneCmd.AddCommand(zoneCreateCmd, zoneGetCmd, zoneDeleteCmd)
	rootCmd.AddCommand(zonesCmd, zoneCmd)
}
