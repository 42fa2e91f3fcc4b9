package doppler

import "github.com/MKhiriev/go-doppler-env/internal/version"

// Version is sent in the client-version header unless Config.ClientVersion
// overrides it.
var Version = version.Version
