package promotion

import (
	"fmt"
)

// Applicator executes every action of a promotion through the command
// registered for its type. Discount distribution setup (which distributor
// the item commands use) is decided once, when the registry is built.
type Applicator struct {
	commands map[string]Command
}

// NewApplicator builds an applicator over the given action-type → command
// bindings.
func NewApplicator(commands map[string]Command) *Applicator {
	return &Applicator{commands: commands}
}

// Apply executes the promotion's actions and reports whether any of them
// changed the subject. An action type without a registered command is a
// configuration error.
func (a *Applicator) Apply(subject Subject, p Promotion) (bool, error) {
	applied := false
	for _, action := range p.Actions {
		cmd, ok := a.commands[action.Type]
		if !ok {
			return applied, fmt.Errorf("promotion %s: no command registered for action type %q", p.Code, action.Type)
		}
		ok, err := cmd.Execute(subject, action.Configuration, p)
		if err != nil {
			return applied, err
		}
		applied = applied || ok
	}
	return applied, nil
}

// Revert undoes the promotion's actions.
func (a *Applicator) Revert(subject Subject, p Promotion) error {
	for _, action := range p.Actions {
		cmd, ok := a.commands[action.Type]
		if !ok {
			return fmt.Errorf("promotion %s: no command registered for action type %q", p.Code, action.Type)
		}
		if err := cmd.Revert(subject, action.Configuration, p); err != nil {
			return err
		}
	}
	return nil
}
