package http

// == add / revoke / regen / show ==
type UserRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password,omitempty" example:"s3cret"`
}

type AddUserResponse struct {
	Username string `json:"username"`
	Ovpn     string `json:"ovpn"`
}

type RevokeUserResponse struct {
	Username string `json:"username"`
	Status   string `json:"status" example:"revoked"`
}

type RegenUserResponse struct {
	Username string `json:"username"`
	Ovpn     string `json:"ovpn"`
	Status   string `json:"status" example:"regenerated"`
}

// == list ==
type ListUsersResponse struct {
	Users []string `json:"users"`
}

// == export ==
type ExportRequest struct {
	Username   string `json:"username" example:"alice"`
	OutputPath string `json:"output_path" example:"/tmp/alice.ovpn"`
}

type ExportResponse struct {
	Username   string `json:"username"`
	ExportedTo string `json:"exported_to"`
}

// == bundles ==
type BundleResponse struct {
	Username   string `json:"username"`
	Path       string `json:"path"`
	Size       int64  `json:"size"`
	ModifiedAt string `json:"modified_at"`
}

type ListBundlesResponse struct {
	Bundles []BundleResponse `json:"bundles"`
}

const (
	StatusRevoked     = "revoked"
	StatusRegenerated = "regenerated"
)
