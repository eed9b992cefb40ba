// Package iam provides user management for simple-facts.
//
// Users exist mainly as the holders of roles: the role package consults
// user-role assignments before allowing a role to be deleted. The package
// supports PostgreSQL and in-memory storage through the IamRepository
// interface.
package iam
