// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/authtoken"
	"github.com/lux-io/ledger/internal/cli"
)

// TokenGenerator generates signed JWT tokens.
type TokenGenerator interface {
	Generate(
		signingKey string,
		role string,
		subject string,
		expiry time.Duration,
	) (string, error)
}

// tokenGenerateCmd represents the tokenGenerate command.
var tokenGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new token",
	Long: `Generate a new API token bound to one of the fixed author roles.
The token's permissions expand from the role at validation time.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		signingKey := appConfig.API.Server.Security.SigningKey
		role, _ := cmd.Flags().GetString("role")
		subject, _ := cmd.Flags().GetString("subject")
		expiry, _ := cmd.Flags().GetDuration("expiry")

		var tm TokenGenerator = authtoken.New(logger)
		token, err := tm.Generate(signingKey, role, subject, expiry)
		if err != nil {
			cli.LogFatal(logger, "failed to generate token", err)
		}

		logger.Info(
			"generated token",
			slog.String("token", token),
			slog.String("role", role),
			slog.String("subject", subject),
		)
		if expiry != 0 {
			logger.Info(
				"token expiry",
				slog.Time("expires_at", time.Now().Add(expiry)),
			)
		}
	},
}

func allowedRoles() []string {
	roles := make([]string, 0, len(authtoken.RolePermissions))
	for role := range authtoken.RolePermissions {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	return roles
}

func init() {
	tokenCmd.AddCommand(tokenGenerateCmd)
	usage := fmt.Sprintf("Role for the token (allowed: %s)", strings.Join(allowedRoles(), ", "))

	tokenGenerateCmd.PersistentFlags().
		StringP("role", "r", "", usage)
	tokenGenerateCmd.PersistentFlags().
		StringP("subject", "u", "", "Subject for the token (e.g., user ID or unique identifier)")
	tokenGenerateCmd.PersistentFlags().
		DurationP("expiry", "e", 0, "Token lifetime (0 issues a non-expiring token)")

	_ = tokenGenerateCmd.MarkPersistentFlagRequired("role")
	_ = tokenGenerateCmd.MarkPersistentFlagRequired("subject")

	tokenGenerateCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		role, _ := cmd.Flags().GetString("role")

		if _, ok := authtoken.RolePermissions[role]; !ok {
			cli.LogFatal(
				logger,
				"invalid role",
				fmt.Errorf("unsupported role: %s", role),
				"allowed", strings.Join(allowedRoles(), ", "),
			)
		}
	}
}
