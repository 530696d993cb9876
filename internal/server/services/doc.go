// Package services contains server-side business logic: account sign-up and
// sign-in, resolution of the identity behind an access token, and the
// owner-scoped task operations that run on behalf of that identity.
package services
