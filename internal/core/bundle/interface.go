package bundle

type BundleIndexHandler interface {
	List() ([]Bundle, error)
}
