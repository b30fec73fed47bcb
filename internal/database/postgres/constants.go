package postgres

// Error Messages - Save Operations
const (
	ErrMsgFailedToLoadSave   = "failed to load save"
	ErrMsgFailedToWriteSave  = "failed to write save"
	ErrMsgFailedToDeleteSave = "failed to delete save"
)
