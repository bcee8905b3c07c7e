package audit

type AuditServiceHandler interface {
	Tail(n int) ([]byte, error)
}
