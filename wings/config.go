package wings

import "time"

type Config struct {
	ListenAddr     string
	DataDir        string
	PanelURL       string
	PanelTimeout   time.Duration
	StopTimeout    time.Duration
	RestartDelay   time.Duration
	ReadinessLatch bool
	DefaultImage   string
	InstallerImage string
	MinecraftImage string
	TerrariaImage  string
	DotnetImage    string
	PostgresDSN    string
	Eggs           EggsConfig
}

type EggsConfig struct {
	Sync       bool
	RepoURL    string
	RepoBranch string
	RepoPath   string
	RepoToken  string
}
