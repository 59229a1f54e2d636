// File: wukala/handlers/bundle.go
package handlers

import "wukala/services/session"

// HandlerBundle aggregates the handlers the route registrar wires up.
type HandlerBundle struct {
	SessionService session.SessionService

	Session     *SessionHandler
	Application *ApplicationHandler
	Admin       *AdminHandler
	Directory   *DirectoryHandler
	CaseLaw     *CaseLawHandler
	Dictionary  *DictionaryHandler
	Assistant   *AssistantHandler
	Messaging   *MessagingHandler
}
