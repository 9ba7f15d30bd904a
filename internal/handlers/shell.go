package handlers

import (
	"bufio"
	"fmt"
	"log"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

// ShellCommand ouvre une session interactive: chaque ligne est découpée comme
// dans un shell puis exécutée sur un arbre de commandes neuf, avec la même session.
func (h *Handlers) ShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Інтерактивна сесія (користувач і кошик зберігаються між командами)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			log.Printf("🐚 Shell ouvert (session %s)", h.Session.ID)
			fmt.Fprintln(out, "BrandedClothingShop. help - список команд, exit - вихід")

			for {
				fmt.Fprint(out, h.prompt())
				if !in.Scan() {
					fmt.Fprintln(out)
					return in.Err()
				}

				line := strings.TrimSpace(in.Text())
				switch line {
				case "":
					continue
				case "exit", "quit":
					log.Printf("🐚 Shell fermé (session %s)", h.Session.ID)
					return nil
				}

				words, err := shlex.Split(line)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					continue
				}
				if len(words) == 0 {
					continue
				}
				if words[0] == "shell" {
					fmt.Fprintln(out, "Ви вже в інтерактивній сесії")
					continue
				}

				root := h.NewRoot()
				root.SetArgs(words)
				root.SetIn(cmd.InOrStdin())
				root.SetOut(out)
				root.SetErr(cmd.ErrOrStderr())
				// cobra affiche déjà l'erreur, la session continue
				_ = root.Execute()
			}
		},
	}
}

func (h *Handlers) prompt() string {
	if h.Session.LoggedIn() {
		return fmt.Sprintf("%s [%d]> ", h.Session.Email(), h.Session.Cart.Count())
	}
	return "shop> "
}
