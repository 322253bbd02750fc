package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	pb "github.com/dmitrijs2005/vaultsiege/internal/proto"
)

// stdout receives prompts written outside printlnFn.
var stdout io.Writer = os.Stdout

var errUsage = errors.New("usage")

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}

func (a *App) Login(ctx context.Context) error {
	token, err := GetSecret(stdout, "Access token: ")
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("empty token")
	}
	a.api.SetAccessToken(token)
	printlnFn("Token set")
	return nil
}

func (a *App) Vault(ctx context.Context) error {
	v, err := a.api.GetVault(ctx)
	if err != nil {
		return err
	}
	printVault(v)
	return nil
}

func (a *App) Collect(ctx context.Context) error {
	resp, err := a.api.CollectGenerator(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Collected %d PP", resp.GetCollected()))
	printVault(resp.GetVault())
	return nil
}

func (a *App) Upgrade(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("upgrade <capacity|shield|generator>")
	}
	resp, err := a.api.UpgradeVault(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Upgraded %s for %d PP", args[0], resp.GetCost()))
	printVault(resp.GetVault())
	return nil
}

func (a *App) Attack(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usage("attack <target> <move|-> [card]")
	}
	return a.attack(ctx, args[0], args[1:])
}

// Use resolves a self-targeted selection.
func (a *App) Use(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usage("use <move|-> [card]")
	}
	return a.attack(ctx, "", args)
}

func (a *App) attack(ctx context.Context, target string, sel []string) error {
	move := sel[0]
	if move == "-" {
		move = ""
	}
	var card string
	if len(sel) > 1 {
		card = sel[1]
	}

	res, err := a.api.Attack(ctx, target, move, card)
	if err != nil {
		return err
	}
	printAttack(res)
	return nil
}

func (a *App) Moves(ctx context.Context) error {
	moves, err := a.api.ListMoves(ctx)
	if err != nil {
		return err
	}
	for _, m := range moves {
		printlnFn(formatMove(m))
	}
	return nil
}

func (a *App) MoveAction(ctx context.Context, action string, args []string) error {
	if len(args) != 1 {
		return usage(action + " <move>")
	}
	m, err := a.api.MoveAction(ctx, action, args[0])
	if err != nil {
		return err
	}
	printlnFn(formatMove(m))
	return nil
}

func (a *App) Artifact(ctx context.Context, equip bool, args []string) error {
	if len(args) != 1 {
		return usage("equip|unequip <artifact>")
	}
	equipped, err := a.api.SetArtifact(ctx, args[0], equip)
	if err != nil {
		return err
	}
	if len(equipped) == 0 {
		printlnFn("Equipped: none")
		return nil
	}
	printlnFn("Equipped: " + strings.Join(equipped, ", "))
	return nil
}

func (a *App) Left(ctx context.Context) error {
	n, err := a.api.RemainingMoves(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Moves remaining today: %d", n))
	return nil
}

func (a *App) Progress(ctx context.Context) error {
	p, err := a.api.ChallengeProgress(ctx)
	if err != nil {
		return err
	}
	for _, c := range p {
		printlnFn(fmt.Sprintf("%-14s %d", c.GetEventType(), c.GetAmount()))
	}
	return nil
}

// Restore refunds spent moves for a player. Needs an admin token.
func (a *App) Restore(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("restore <player> <count>")
	}
	count, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || count <= 0 {
		return usage("restore <player> <count>")
	}
	n, err := a.api.RestoreMoves(ctx, args[0], count)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s has %d moves remaining today", args[0], n))
	return nil
}

// Grant hands a card to a player. Needs an admin token.
func (a *App) Grant(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("grant <player> <card>")
	}
	c, err := a.api.GrantCard(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Granted %s to %s (%d uses)", c.GetCardId(), args[0], c.GetUsesRemaining()))
	return nil
}

func printVault(v *pb.Vault) {
	if v == nil {
		return
	}
	printlnFn(fmt.Sprintf("PP %d/%d  balance %d  xp %d", v.CurrentPp, v.Capacity, v.Balance, v.Xp))
	printlnFn(fmt.Sprintf("Shield %d/%d  Vault %d/%d  Overshield %d",
		v.ShieldStrength, v.MaxShieldStrength, v.VaultHealth, v.MaxVaultHealth, v.Overshield))
	printlnFn(fmt.Sprintf("Generator L%d  pending %d  (+%d PP, +%d shield per day)",
		v.GeneratorLevel, v.GeneratorPendingPp, v.GeneratorPpPerDay, v.GeneratorShieldsPerDay))
	printlnFn(fmt.Sprintf("Moves %d/%d", v.MovesRemaining, v.MaxMovesPerDay))
	if v.CooldownRemainingSeconds > 0 {
		printlnFn(fmt.Sprintf("Cooldown: %s remaining", time.Duration(v.CooldownRemainingSeconds)*time.Second))
	}
}

func printAttack(r *pb.AttackResponse) {
	printlnFn(r.Message)
	if r.OvershieldAbsorbed {
		printlnFn("Absorbed by overshield")
	}
	if r.TotalDamage > 0 {
		printlnFn(fmt.Sprintf("Damage %d (shield %d, vault %d)  stolen %d PP",
			r.TotalDamage, r.ShieldDamage, r.VaultHealthDamage, r.PpStolen))
	}
	printlnFn(fmt.Sprintf("+%d XP  moves left %d", r.XpGained, r.MovesRemaining))
}

func formatMove(m *pb.Move) string {
	lock := "locked"
	if m.Unlocked {
		lock = fmt.Sprintf("M%d", m.MasteryLevel)
	}
	s := fmt.Sprintf("%-16s %-9s %-7s %-6s", m.Id, m.Category, m.Type, lock)
	if m.NextCost > 0 {
		s += fmt.Sprintf(" next %d PP", m.NextCost)
	}
	return s
}
