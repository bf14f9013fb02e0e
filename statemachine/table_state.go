// Package statemachine defines the table lifecycle: which POS action may fire
// from which table status, and the status it lands in. Item-count guards
// (empty order, open order) live with the service, since they depend on the
// ledger rather than the status alone.
package statemachine

import (
	"errors"

	"restaurant-pos-api/models"
)

// Action is a POS operation that moves a table through its lifecycle.
type Action string

const (
	ActionOccupy        Action = "occupy"
	ActionReserve       Action = "reserve"
	ActionStartOrder    Action = "start_order"
	ActionSaveOrder     Action = "save_order"
	ActionCompleteOrder Action = "complete_order"
	ActionCancelOrder   Action = "cancel_order"
	ActionFree          Action = "free"
)

// Transition defines a valid status change triggered by an action
type Transition struct {
	Action Action             `json:"action"`
	From   models.TableStatus `json:"from"`
	To     models.TableStatus `json:"to"`
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Occupy and Reserve may fire from any state; a reserved party arriving
	// occupies the table, an occupied table can be re-keyed to a new party.
	{Action: ActionOccupy, From: models.StatusAvailable, To: models.StatusOccupied},
	{Action: ActionOccupy, From: models.StatusReserved, To: models.StatusOccupied},
	{Action: ActionOccupy, From: models.StatusOccupied, To: models.StatusOccupied},
	{Action: ActionReserve, From: models.StatusAvailable, To: models.StatusReserved},
	{Action: ActionReserve, From: models.StatusOccupied, To: models.StatusReserved},
	{Action: ActionReserve, From: models.StatusReserved, To: models.StatusReserved},
	// Starting an ordering session occupies the table and keeps it occupied.
	{Action: ActionStartOrder, From: models.StatusAvailable, To: models.StatusOccupied},
	{Action: ActionStartOrder, From: models.StatusReserved, To: models.StatusOccupied},
	{Action: ActionStartOrder, From: models.StatusOccupied, To: models.StatusOccupied},
	// Order actions require the table to already be occupied.
	{Action: ActionSaveOrder, From: models.StatusOccupied, To: models.StatusOccupied},
	{Action: ActionCompleteOrder, From: models.StatusOccupied, To: models.StatusAvailable},
	{Action: ActionCancelOrder, From: models.StatusOccupied, To: models.StatusAvailable},
	// Free returns any table to available; the no-open-order guard is enforced
	// by the service before this is consulted.
	{Action: ActionFree, From: models.StatusAvailable, To: models.StatusAvailable},
	{Action: ActionFree, From: models.StatusOccupied, To: models.StatusAvailable},
	{Action: ActionFree, From: models.StatusReserved, To: models.StatusAvailable},
}

type transitionKey struct {
	Action Action
	From   models.TableStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]models.TableStatus {
	m := make(map[transitionKey]models.TableStatus)
	for _, t := range validTransitions {
		m[transitionKey{t.Action, t.From}] = t.To
	}
	return m
}()

// ValidActionsFrom returns all actions that may fire from a given status
func ValidActionsFrom(status models.TableStatus) []Action {
	var actions []Action
	seen := map[Action]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.Action] {
			actions = append(actions, t.Action)
			seen[t.Action] = true
		}
	}
	return actions
}

// Apply checks whether the action may fire from the given status and returns
// the resulting status.
func Apply(action Action, from models.TableStatus) (models.TableStatus, error) {
	if to, ok := transitionMap[transitionKey{action, from}]; ok {
		return to, nil
	}
	return from, errors.New(
		"invalid transition: '" + string(action) + "' is not allowed while the table is " +
			string(from) + ". Valid actions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.TableStatus) string {
	actions := ValidActionsFrom(status)
	if len(actions) == 0 {
		return "none"
	}
	result := ""
	for i, a := range actions {
		if i > 0 {
			result += ", "
		}
		result += string(a)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
