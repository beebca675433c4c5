package runtime

const (
	LabelServerID   = "pyro.server.id"
	LabelServerName = "pyro.server.name"
	LabelServerGame = "pyro.server.game"

	// install containers are deliberately not tagged with LabelServerID,
	// otherwise they would be picked up as the server's runtime container.
	LabelInstallID = "pyro.install.id"
)

func ContainerName(serverID string) string {
	return "pyro-" + serverID
}

func InstallerName(serverID string) string {
	return "pyro-" + serverID + "-installer"
}

func ServerLabels(serverID, name, game string) map[string]string {
	return map[string]string{
		LabelServerID:   serverID,
		LabelServerName: name,
		LabelServerGame: game,
	}
}

func InstallLabels(serverID string) map[string]string {
	return map[string]string{
		LabelInstallID: serverID,
	}
}
