package submission

import "github.com/openhie/xds-repository/internal/platform/xds"

// Document pairs raw document bytes with the id of the extrinsic object
// describing them. Content arrives base64-encoded on the wire and is
// decoded by the JSON layer.
type Document struct {
	ID      string `json:"id"`
	Content []byte `json:"content"`
}

// ProvideAndRegisterRequest is one Provide and Register Document Set
// transaction: the documents plus the full metadata envelope. It is owned
// by the transport layer and read-only to the repository for the duration
// of the request.
type ProvideAndRegisterRequest struct {
	Documents []Document               `json:"documents"`
	Metadata  xds.SubmitObjectsRequest `json:"metadata"`
}

func (r *ProvideAndRegisterRequest) contentByID() map[string][]byte {
	m := make(map[string][]byte, len(r.Documents))
	for _, d := range r.Documents {
		m[d.ID] = d.Content
	}
	return m
}
