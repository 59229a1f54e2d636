package session

import "wukala/models"

// NavItem is one entry in a navigation set.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var publicNav = []NavItem{
	{Label: "Home", Path: "/"},
	{Label: "Find a Lawyer", Path: "/lawyers"},
	{Label: "Legal Dictionary", Path: "/dictionary"},
	{Label: "Case Law", Path: "/caselaw"},
	{Label: "Sign In", Path: "/signin"},
}

var clientNav = []NavItem{
	{Label: "Home", Path: "/"},
	{Label: "Find a Lawyer", Path: "/lawyers"},
	{Label: "Ask Wukala", Path: "/assistant"},
	{Label: "Legal Dictionary", Path: "/dictionary"},
	{Label: "Case Law", Path: "/caselaw"},
	{Label: "Messages", Path: "/messages"},
}

var lawyerNav = []NavItem{
	{Label: "Dashboard", Path: "/lawyer"},
	{Label: "Case Law", Path: "/caselaw"},
	{Label: "Legal Dictionary", Path: "/dictionary"},
	{Label: "Messages", Path: "/messages"},
	{Label: "My Application", Path: "/lawyer/application"},
}

var adminNav = []NavItem{
	{Label: "Dashboard", Path: "/admin"},
	{Label: "Applications", Path: "/admin/applications"},
}

// NavigationFor picks the navigation set for a session. A nil record yields
// the public set; lawyer and admin roles get their own sets; everything
// else, including unrecognized roles, degrades to the client set.
func NavigationFor(rec *models.SessionRecord) []NavItem {
	if rec == nil {
		return publicNav
	}
	switch rec.Role {
	case models.RoleLawyer:
		return lawyerNav
	case models.RoleAdmin:
		return adminNav
	default:
		return clientNav
	}
}
