// Package errors provides the structured error type shared by the gym battle
// service layers.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Codes map onto gRPC status codes at the handler boundary.
//
// # Battle failure taxonomy
//
// Three failure kinds matter to battle clients:
//
//	errors.DataUnavailable("species", "25", err) // provider failed; recover with fallback data
//	errors.InvalidSelection("not the player's turn") // rejected, state unchanged
//	errors.BattleOver(battleID)                  // terminal battle, action is a no-op
//
// They are distinguished with IsDataUnavailable, IsInvalidSelection and
// IsBattleOver. None of them is fatal to the process.
//
// # Wrapping
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save battle")
//	}
//
// Wrap keeps the code of a wrapped *Error; WrapWithCode replaces it.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("tier", input.Tier, 1, 8, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err); metadata travels as a
// google.protobuf.Struct status detail and is restored by FromGRPCError.
package errors
