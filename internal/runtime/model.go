package runtime

import "time"

type Operation string

const (
	OpAdd    Operation = "add"
	OpRevoke Operation = "revoke"
	OpRegen  Operation = "regen"
	OpList   Operation = "list"
	OpShow   Operation = "show"
	OpExport Operation = "export"
)

type InvokeModel struct {
	Op      Operation
	Args    []string
	Timeout time.Duration
}

type InvokeResult struct {
	InvocationId string
	Argv         []string
	Stdout       string
	Stderr       string
	ExitCode     int
	Duration     time.Duration
}
