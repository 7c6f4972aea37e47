package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/utilkit/internal/app"
	"github.com/oshokin/utilkit/internal/jwt"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	jwtCmd = &cobra.Command{
		Use:   "jwt",
		Short: "Sign, verify, decode and refresh JSON Web Tokens.",
		Long: `Works with HMAC-signed tokens (HS256, HS384, HS512).
The signing secret is jwt_secret from the config or UTILKIT_JWT_SECRET;
run "utilkit jwt init-secret" to generate one.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	jwtSignCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign claims and print the token.",
		Long: `Examples:
  utilkit jwt sign --claim user=ant --claim role=admin --sub 42
  utilkit jwt sign --claims-json '{"scopes":["read","write"]}' --expires-in 7d`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			claims, _ := flags.GetStringArray("claim")
			claimsJSON, _ := flags.GetString("claims-json")
			subject, _ := flags.GetString("sub")
			audience, _ := flags.GetStringSlice("aud")
			expiresIn, _ := flags.GetString("expires-in")
			notBefore, _ := flags.GetString("not-before")
			algorithm, _ := flags.GetString("alg")

			err := app.ExecuteJWTSignCommand(cmd.Context(), appConfig, app.JWTSignParams{
				Claims:     claims,
				ClaimsJSON: claimsJSON,
				Subject:    subject,
				Audience:   audience,
				ExpiresIn:  expiresIn,
				NotBefore:  notBefore,
				Algorithm:  algorithm,
			}, cmd.OutOrStdout())
			exitOnError(cmd, "sign token", err)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	jwtVerifyCmd = &cobra.Command{
		Use:   "verify TOKEN",
		Short: "Check the signature and lifetime of a token.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			secret, _ := cmd.Flags().GetString("secret")

			err := app.ExecuteJWTVerifyCommand(cmd.Context(), appConfig, args[0], secret, outputFormat(cmd), cmd.OutOrStdout())
			exitOnError(cmd, "verify token", err)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	jwtDecodeCmd = &cobra.Command{
		Use:   "decode TOKEN",
		Short: "Print the claims of a token without verifying it.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := app.ExecuteJWTDecodeCommand(cmd.Context(), args[0], outputFormat(cmd), cmd.OutOrStdout())
			exitOnError(cmd, "decode token", err)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	jwtRefreshCmd = &cobra.Command{
		Use:   "refresh TOKEN",
		Short: "Exchange a refresh token for a new one valid for jwt_refresh_expires_in.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := app.ExecuteJWTRefreshCommand(cmd.Context(), appConfig, args[0], outputFormat(cmd), cmd.OutOrStdout())
			exitOnError(cmd, "refresh token", err)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	jwtInitSecretCmd = &cobra.Command{
		Use:   "init-secret",
		Short: "Generate a random jwt_secret and save it to the config file.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			length, _ := flags.GetInt("length")
			force, _ := flags.GetBool("force")

			err := app.ExecuteJWTInitSecretCommand(cmd.Context(), appConfig, length, force)
			exitOnError(cmd, "initialize secret", err)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	signFlags := jwtSignCmd.Flags()
	signFlags.StringArray("claim", nil, "string claim as key=value, may be repeated.")
	signFlags.String("claims-json", "", "JSON object with additional claims.")
	signFlags.String("sub", "", "subject claim.")
	signFlags.StringSlice("aud", nil, "audience claim, may be repeated.")
	signFlags.String("expires-in", "", "token lifetime, for example: 15m, 7d (default is jwt_expires_in).")
	signFlags.String("not-before", "", "delay before the token becomes valid, for example: 5m.")
	signFlags.String("alg", jwt.AlgorithmHS256, "signing algorithm: HS256, HS384 or HS512.")

	jwtVerifyCmd.Flags().String("secret", "", "secret to verify with (default is jwt_secret).")

	initSecretFlags := jwtInitSecretCmd.Flags()
	initSecretFlags.Int("length", jwt.DefaultSecretLength, "number of random bytes.")
	initSecretFlags.Bool("force", false, "replace an existing secret.")

	jwtCmd.AddCommand(jwtSignCmd, jwtVerifyCmd, jwtDecodeCmd, jwtRefreshCmd, jwtInitSecretCmd)
	rootCmd.AddCommand(jwtCmd)
}
