package dto

import (
	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
)

// Action is a closed enumeration of the request kinds the two endpoints
// accept. Dispatching over typed constants keeps the switch exhaustive.
type Action string

// Auth endpoint actions
const (
	ActionRegister     Action = "register"
	ActionLogin        Action = "login"
	ActionLogout       Action = "logout"
	ActionUpdatePoints Action = "update_points"
)

// Admin endpoint actions
const (
	ActionGetUsers       Action = "get_users"
	ActionBanUser        Action = "ban_user"
	ActionUnbanUser      Action = "unban_user"
	ActionSetAdmin       Action = "set_admin"
	ActionAddBloodPoints Action = "add_blood_points"
	ActionAddMusic       Action = "add_music"
	ActionRemoveMusic    Action = "remove_music"
	ActionGetMusic       Action = "get_music"
	ActionAddPartner     Action = "add_partner"
	ActionRemovePartner  Action = "remove_partner"
	ActionGetPartners    Action = "get_partners"
	ActionGetAdminLogs   Action = "get_admin_logs"
)

var authActions = map[Action]bool{
	ActionRegister:     true,
	ActionLogin:        true,
	ActionLogout:       true,
	ActionUpdatePoints: true,
}

var adminActions = map[Action]bool{
	ActionGetUsers:       true,
	ActionBanUser:        true,
	ActionUnbanUser:      true,
	ActionSetAdmin:       true,
	ActionAddBloodPoints: true,
	ActionAddMusic:       true,
	ActionRemoveMusic:    true,
	ActionGetMusic:       true,
	ActionAddPartner:     true,
	ActionRemovePartner:  true,
	ActionGetPartners:    true,
	ActionGetAdminLogs:   true,
}

// ParseAuthAction maps a raw action string to an auth endpoint action.
// Anything outside the set, including the empty string, is ErrUnknownAction.
func ParseAuthAction(raw string) (Action, error) {
	action := Action(raw)
	if !authActions[action] {
		return "", errs.ErrUnknownAction
	}
	return action, nil
}

// ParseAdminAction maps a raw action string to an admin endpoint action
func ParseAdminAction(raw string) (Action, error) {
	action := Action(raw)
	if !adminActions[action] {
		return "", errs.ErrUnknownAction
	}
	return action, nil
}
