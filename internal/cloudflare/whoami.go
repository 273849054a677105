package cloudflare

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hatchdev/hatch/internal/run"
)

// whoamiRowPattern matches the account table rows wrangler prints:
// │ Account Name │ 0123456789abcdef0123456789abcdef │
var whoamiRowPattern = regexp.MustCompile(`[│|]\s*([^│|]+?)\s*[│|]\s*([0-9a-f]{32})\s*[│|]`)

// ListAccountsFromWrangler derives the account mapping from `wrangler
// whoami` output, for operators authenticated through the browser login
// flow instead of an API token.
func ListAccountsFromWrangler(ctx context.Context, runner run.Runner) (map[string]string, error) {
	out, err := runner.Run(ctx, "wrangler", []string{"whoami"}, run.Options{Silent: true})
	if err != nil {
		return nil, fmt.Errorf("failed to query wrangler accounts: %w", err)
	}

	accounts := make(map[string]string)
	for _, match := range whoamiRowPattern.FindAllStringSubmatch(out, -1) {
		name := strings.TrimSpace(match[1])
		id := match[2]
		if name == "" || strings.EqualFold(name, "account name") {
			continue
		}
		accounts[name] = id
	}

	if len(accounts) == 0 {
		return nil, fmt.Errorf("no accounts found in wrangler whoami output")
	}
	return accounts, nil
}
