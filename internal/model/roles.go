package model

// RoleAdmin sees every meeting regardless of department membership.
// All other role tags are free-form strings matched against meeting
// audience tags.
const RoleAdmin = "admin"
