package runtime

import "context"

// CtlHandler runs a single openvpn-ctl subcommand and reports what the
// process printed and how it exited.
type CtlHandler interface {
	Invoke(ctx context.Context, invokeParameter InvokeModel) (InvokeResult, error)
}
