// Package account picks the cloud account a deploy runs against.
package account

import (
	"fmt"
	"sort"

	"github.com/hatchdev/hatch/internal/cli"
	"github.com/hatchdev/hatch/internal/session"
)

// LookupError is returned when a chosen account id cannot be resolved
// back to a display name in the listing it came from.
type LookupError struct {
	ID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("account id %q not found in account listing", e.ID)
}

// Choose selects an account from the name-to-id mapping. A sole account
// is picked without prompting; otherwise the operator picks one.
func Choose(accounts map[string]string, prompter cli.Prompter) (session.Account, error) {
	if len(accounts) == 0 {
		return session.Account{}, fmt.Errorf("no accounts available")
	}

	if len(accounts) == 1 {
		for name, id := range accounts {
			return session.Account{ID: id, Name: name}, nil
		}
	}

	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	options := make([]cli.Option, 0, len(names))
	for _, name := range names {
		options = append(options, cli.Option{Label: name, Value: accounts[name]})
	}

	id, err := prompter.Select("Which account do you want to use?", options)
	if err != nil {
		return session.Account{}, err
	}

	name, err := nameForID(accounts, id)
	if err != nil {
		return session.Account{}, err
	}

	return session.Account{ID: id, Name: name}, nil
}

func nameForID(accounts map[string]string, id string) (string, error) {
	for name, accID := range accounts {
		if accID == id {
			return name, nil
		}
	}
	return "", &LookupError{ID: id}
}
