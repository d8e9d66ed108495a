// Package model defines the form declaration consumed by hosts: an ordered
// list of fields, each naming the control kind a host mounts for it. The field
// order doubles as the declaration order of the field reference registry, so
// FormModel.Names feeds fieldref.New directly. Radio fields mount one control
// per option and therefore bind as a group; every other control kind binds as
// a single handle. Builders reside in internal/model but return the types
// defined here.
package model
