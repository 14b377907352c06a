package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func payCmd() *cobra.Command {
	var (
		telephone string
		amount    string
	)

	cmd := &cobra.Command{
		Use:   "pay [account-number]",
		Short: "Start an Mpesa payment for an account",
		Long: "Start an Mpesa payment for an account. The portal sends a payment\n" +
			"prompt to the given telephone; confirm it on the phone, then run\n" +
			"'selfcare confirm' with the transaction code.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := wire.Accounts.InitiatePayment(cmd.Context(), args[0], telephone, amount)
			if err != nil {
				return err
			}
			if message == "" {
				message = "Payment initiated; check your phone"
			}
			fmt.Println(message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&telephone, "telephone", "t", "", "telephone to pay from (starts with 0)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount in KES")
	cmd.MarkFlagRequired("telephone")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func confirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm [transaction-code]",
		Short: "Confirm a payment by Mpesa transaction code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := wire.Accounts.ConfirmPayment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if message == "" {
				message = "Payment confirmed"
			}
			fmt.Println(message)
			return nil
		},
	}
}
