package objval

// ACL is the access control level applied to a bucket or object.
type ACL string

const (
	// ACLDefault means the object inherits the ACL of its bucket; only valid for objects.
	ACLDefault ACL = "default"

	ACLPrivate         ACL = "private"
	ACLPublicRead      ACL = "public-read"
	ACLPublicReadWrite ACL = "public-read-write"
)

// StorageClass is the tier a bucket or object is stored in.
type StorageClass string

const (
	StorageClassStandard         StorageClass = "Standard"
	StorageClassInfrequentAccess StorageClass = "IA"
	StorageClassArchive          StorageClass = "Archive"
)
