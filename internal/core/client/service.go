package client

import (
	"context"
	"fmt"
	"ovpnapi/internal/runtime"
	"ovpnapi/internal/runtime/ovpnctl"
	"ovpnapi/internal/utils"
	"path/filepath"
	"time"
)

func NewClientService(ctlHandler runtime.CtlHandler, outputDir string, timeouts Timeouts) *ClientService {
	return &ClientService{
		filesystemHandler: utils.NewFilesystemExecutor(),
		ctlHandler:        ctlHandler,
		outputDir:         outputDir,
		timeouts:          timeouts,
	}
}

type ClientService struct {
	filesystemHandler utils.FilesystemHandler
	ctlHandler        runtime.CtlHandler

	outputDir string
	timeouts  Timeouts
}

// == service: add ==
func (s *ClientService) Add(ctx context.Context, addParameter ServiceAddModel) (ServiceBundleResult, error) {
	return s.issue(ctx, runtime.OpAdd, addParameter.Username, addParameter.Password, s.timeouts.Add)
}

// == service: revoke ==
func (s *ClientService) Revoke(ctx context.Context, revokeParameter ServiceRevokeModel) (ServiceResult, error) {
	res, err := s.ctlHandler.Invoke(ctx, runtime.InvokeModel{
		Op:      runtime.OpRevoke,
		Args:    []string{revokeParameter.Username},
		Timeout: s.timeouts.Revoke,
	})
	return toServiceResult(res), err
}

// == service: regen ==
func (s *ClientService) Regen(ctx context.Context, regenParameter ServiceRegenModel) (ServiceBundleResult, error) {
	return s.issue(ctx, runtime.OpRegen, regenParameter.Username, regenParameter.Password, s.timeouts.Regen)
}

// == service: list ==
func (s *ClientService) List(ctx context.Context) (ServiceListResult, error) {
	res, err := s.ctlHandler.Invoke(ctx, runtime.InvokeModel{
		Op:      runtime.OpList,
		Timeout: s.timeouts.List,
	})
	if err != nil {
		return ServiceListResult{ServiceResult: toServiceResult(res)}, err
	}
	return ServiceListResult{
		ServiceResult: toServiceResult(res),
		Users:         ParseUserList(res.Stdout),
	}, nil
}

// == service: show ==
func (s *ClientService) Show(ctx context.Context, showParameter ServiceShowModel) (ServiceShowResult, error) {
	res, err := s.ctlHandler.Invoke(ctx, runtime.InvokeModel{
		Op:      runtime.OpShow,
		Args:    []string{showParameter.Username},
		Timeout: s.timeouts.Show,
	})
	if err != nil {
		return ServiceShowResult{ServiceResult: toServiceResult(res)}, err
	}
	return ServiceShowResult{
		ServiceResult: toServiceResult(res),
		Text:          res.Stdout,
	}, nil
}

// == service: export ==
func (s *ClientService) Export(ctx context.Context, exportParameter ServiceExportModel) (ServiceResult, error) {
	res, err := s.ctlHandler.Invoke(ctx, runtime.InvokeModel{
		Op:      runtime.OpExport,
		Args:    []string{exportParameter.Username, exportParameter.OutputPath},
		Timeout: s.timeouts.Export,
	})
	return toServiceResult(res), err
}

// BundlePath is where openvpn-ctl leaves the bundle for username. Without
// an output directory the path is relative to the working directory.
func (s *ClientService) BundlePath(username string) string {
	name := username + utils.BundleExt
	if s.outputDir == "" {
		return name
	}
	return filepath.Join(s.outputDir, name)
}

// issue runs add or regen and then reads back the bundle the tool was
// expected to write. A zero exit without a bundle is still a failure.
func (s *ClientService) issue(ctx context.Context, op runtime.Operation, username, password string, timeout time.Duration) (ServiceBundleResult, error) {
	args := []string{username}
	if password != "" {
		args = append(args, "--pass", password)
	}

	res, err := s.ctlHandler.Invoke(ctx, runtime.InvokeModel{
		Op:      op,
		Args:    args,
		Timeout: timeout,
	})
	result := ServiceBundleResult{ServiceResult: toServiceResult(res)}
	if err != nil {
		return result, err
	}

	result.BundlePath = s.BundlePath(username)
	bundle, err := s.readBundle(op, result.BundlePath)
	if err != nil {
		if be, ok := err.(*runtime.BridgeError); ok {
			be.InvocationId = res.InvocationId
		}
		return result, err
	}
	result.Bundle = bundle
	return result, nil
}

func (s *ClientService) readBundle(op runtime.Operation, path string) (string, error) {
	if _, err := s.filesystemHandler.Stat(path); err != nil {
		if s.filesystemHandler.IsNotExist(err) {
			return "", runtime.NewArtifactMissing(op, path)
		}
		return "", runtime.NewUnexpectedFailure(op, fmt.Errorf("stat bundle: %w", err))
	}
	data, err := s.filesystemHandler.ReadFile(path)
	if err != nil {
		return "", runtime.NewUnexpectedFailure(op, fmt.Errorf("read bundle: %w", err))
	}
	return string(data), nil
}

func toServiceResult(res runtime.InvokeResult) ServiceResult {
	out := ServiceResult{InvocationId: res.InvocationId}
	if len(res.Argv) > 0 {
		out.Command = ovpnctl.RenderCommand("openvpn-ctl", res.Argv)
	}
	return out
}
