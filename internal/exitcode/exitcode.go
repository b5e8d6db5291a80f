package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	ProvisionError  = 4
	LoadError       = 5
	QueryError      = 6
	PartialSuccess  = 7
)
