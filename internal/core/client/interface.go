package client

import "context"

type ClientServiceHandler interface {
	Add(ctx context.Context, addParameter ServiceAddModel) (ServiceBundleResult, error)
	Revoke(ctx context.Context, revokeParameter ServiceRevokeModel) (ServiceResult, error)
	Regen(ctx context.Context, regenParameter ServiceRegenModel) (ServiceBundleResult, error)
	List(ctx context.Context) (ServiceListResult, error)
	Show(ctx context.Context, showParameter ServiceShowModel) (ServiceShowResult, error)
	Export(ctx context.Context, exportParameter ServiceExportModel) (ServiceResult, error)
}
