package agent

// ToolDefinition describes an assistant-callable tool for registration with
// a tool-calling front end
type ToolDefinition struct {
	Name        string
	Description string
	ReadOnly    bool
}

// Definitions returns the metadata for every tool the toolset exposes
func Definitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "list_own_creations",
			Description: "List all sessions created by the user",
			ReadOnly:    true,
		},
		{
			Name:        "list_user_teams",
			Description: "List all teams where the user is a member",
			ReadOnly:    true,
		},
		{
			Name:        "list_team_sessions",
			Description: "List all sessions shared with a specific team",
			ReadOnly:    true,
		},
		{
			Name:        "list_repo_sessions",
			Description: "List all sessions of a specific repository",
			ReadOnly:    true,
		},
		{
			Name:        "import_session",
			Description: "Import a session by its ID, returns description and full session data",
			ReadOnly:    true,
		},
		{
			Name: "share_session_with_team",
			Description: "Share an existing session with a team. The caller must own " +
				"the session and belong to the team.",
		},
		{
			Name: "update_session",
			Description: "Update the content (session_data) of an existing session. " +
				"Only the session owner can update it. session_data must be a " +
				"properly formatted HTML document.",
		},
		{
			Name: "export_session",
			Description: "Export and save the current session. session_data must be a " +
				"complete HTML document; the stored report is rendered from it. " +
				"Include the repository origin in the 'repo' parameter when one exists.",
		},
	}
}
