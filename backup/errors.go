package backup

// Kind separates upload/list failures from restore failures.
type Kind string

const (
	KindBackup  Kind = "backup_error"
	KindRestore Kind = "restore_error"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func backupErr(message string, err error) *Error {
	return &Error{Kind: KindBackup, Message: message, Err: err}
}

func restoreErr(message string, err error) *Error {
	return &Error{Kind: KindRestore, Message: message, Err: err}
}
