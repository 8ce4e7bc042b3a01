package types

// ContextKey is the type for values handed to subcommands via context.
type ContextKey string

// ClientAppKey carries the initialized *client.App.
const ClientAppKey ContextKey = "clientApp"
