package resources

import "ebs-volume-resizer/collection"

const (
	// ReservedTagPrefix marks tags owned by AWS services; CreateTags rejects them
	ReservedTagPrefix = "aws:"
	// MaxTagsPerResource is the EC2 limit on user tags per resource
	MaxTagsPerResource = 50
)

// PropagatableTags returns the tags that may be copied onto another resource
func PropagatableTags(tags collection.Tags) collection.Tags {
	return tags.WithoutPrefix(ReservedTagPrefix)
}
