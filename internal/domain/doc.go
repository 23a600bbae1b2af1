// Package domain defines the store contract and the types shared by every
// store kind. It contains plain types and contracts (interfaces) only.
package domain
