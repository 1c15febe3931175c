package handlers

import "github.com/Bast8313/soundora/app/utils/validator"

// requestValidator enforces the validate tags on bound request bodies.
// The underlying validator instance is safe for concurrent use.
var requestValidator = validator.New()
