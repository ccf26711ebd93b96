package main

import (
	"fmt"

	"github.com/sethvargo/go-password/password"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flight-booking/cmd/api/services"
	"flight-booking/repositories"
)

// generatedPasswordLength 는 --password 를 생략했을 때 만드는 비밀번호 길이다.
const generatedPasswordLength = 16

func newCreateAdminCmd(v *viper.Viper) *cobra.Command {
	var (
		username  string
		pass      string
		firstName string
		lastName  string
		phone     string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a superuser account",
		Long: `Create a superuser account that can use the admin console.

If --password is omitted a random password is generated and printed once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			generated := false
			if pass == "" {
				p, err := generatePassword()
				if err != nil {
					return err
				}
				pass, generated = p, true
			}

			ctx := cmd.Context()
			pool, err := connect(ctx, v)
			if err != nil {
				return err
			}
			defer pool.Close()

			accounts := services.NewAccountService(repositories.NewStore(pool), nil, nil, nil, 0)
			user, err := accounts.Register(ctx, services.RegisterInput{
				Username:    username,
				Password:    pass,
				FirstName:   firstName,
				LastName:    lastName,
				PhoneNumber: phone,
				IsSuperuser: true,
			})
			if err != nil {
				return err
			}

			cmd.Printf("created superuser %s (id %d)\n", user.Username, user.ID)
			if generated {
				cmd.Printf("password: %s\n", pass)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&pass, "password", "", "password (default: generated)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func generatePassword() (string, error) {
	p, err := password.Generate(generatedPasswordLength, 4, 0, false, false)
	if err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	return p, nil
}
