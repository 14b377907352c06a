// Package portal provides the HTTP implementation of the domain.PortalClient
// interface used by the client.
//
// Two remote parties are involved: the fixed central allow-list service that
// validates tenant domains, and the resolved tenant's own portal API at
// https://{domain}/api/... . Authenticated endpoints carry a bearer token
// read from the session store at call time.
//
// Responses use the {success, message, data} envelope. Failures are kept
// distinguishable for callers: an application-level rejection (success=false
// or a field-keyed error map) surfaces as *APIError, while a transport
// failure (no response, or a non-2xx status without a parseable envelope)
// surfaces as *TransportError. Payment flows depend on that distinction to
// avoid double-submitting on an ambiguous network failure.
package portal
