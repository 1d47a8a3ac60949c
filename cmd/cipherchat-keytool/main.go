package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	cipherchat "github.com/cipherchat/core-go"
)

const version = "1.0.0"

func main() {
	// A .env in the working directory may carry CIPHERCHAT_* defaults.
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "cipherchat-keytool"
	app.Usage = "CipherChat identity and backup maintenance"
	app.Version = version
	app.Commands = []cli.Command{
		keygenCommand(),
		fingerprintCommand(),
		inspectCommand(),
		restoreCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func keygenCommand() cli.Command {
	return cli.Command{
		Name:  "keygen",
		Usage: "issue a new identity and write its public key and wrapped private key",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:   "passphrase, p",
				Usage:  "passphrase protecting the private key",
				EnvVar: "CIPHERCHAT_PASSPHRASE",
			},
			cli.StringFlag{
				Name:  "out, o",
				Usage: "write key files into `DIR`",
				Value: ".",
			},
		},
		Action: func(c *cli.Context) error {
			passphrase := c.String("passphrase")
			if passphrase == "" {
				return cli.NewExitError("a passphrase is required (--passphrase or CIPHERCHAT_PASSPHRASE)", 1)
			}

			identity, err := cipherchat.GenerateIdentity()
			if err != nil {
				return err
			}

			envelope, err := identity.Wrap(passphrase)
			if err != nil {
				return err
			}

			outDir := c.String("out")
			pubPath := filepath.Join(outDir, "public.pem")
			if err := os.WriteFile(pubPath, []byte(identity.PublicKeyPEM()), 0o644); err != nil {
				return err
			}

			raw, err := json.MarshalIndent(envelope, "", "  ")
			if err != nil {
				return err
			}
			keyPath := filepath.Join(outDir, "private-key.json")
			if err := os.WriteFile(keyPath, raw, 0o600); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"public":  pubPath,
				"private": keyPath,
			}).Info("identity written")
			fmt.Println(identity.Fingerprint())
			return nil
		},
	}
}

func fingerprintCommand() cli.Command {
	return cli.Command{
		Name:      "fingerprint",
		Usage:     "print the fingerprint of a PEM public key file",
		ArgsUsage: "<public.pem>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.NewExitError("usage: cipherchat-keytool fingerprint <public.pem>", 1)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			fp, err := cipherchat.FingerprintPEM(string(data))
			if err != nil {
				return err
			}
			fmt.Println(fp)
			return nil
		},
	}
}

func inspectCommand() cli.Command {
	return cli.Command{
		Name:      "inspect",
		Usage:     "print the cleartext header of a backup file without decrypting it",
		ArgsUsage: "<backup.json>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.NewExitError("usage: cipherchat-keytool inspect <backup.json>", 1)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			info, err := cipherchat.InspectBackup(data)
			if err != nil {
				return err
			}

			fmt.Printf("owner:     %s\n", info.Owner)
			fmt.Printf("version:   %s\n", info.Version)
			fmt.Printf("createdAt: %s\n", info.CreatedAt.Format("2006-01-02 15:04:05 MST"))
			fmt.Printf("messages:  %d\n", info.Stats.TotalMessages)
			fmt.Printf("contacts:  %d\n", info.Stats.TotalContacts)
			return nil
		},
	}
}

func restoreCommand() cli.Command {
	return cli.Command{
		Name:      "restore",
		Usage:     "decrypt and validate a backup file for an account",
		ArgsUsage: "<backup.json>",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:   "password",
				Usage:  "backup password",
				EnvVar: "CIPHERCHAT_BACKUP_PASSWORD",
			},
			cli.StringFlag{
				Name:  "owner",
				Usage: "username the backup must belong to",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.NewExitError("usage: cipherchat-keytool restore <backup.json>", 1)
			}
			password := c.String("password")
			if password == "" {
				return cli.NewExitError("a password is required (--password or CIPHERCHAT_BACKUP_PASSWORD)", 1)
			}
			owner := c.String("owner")
			if owner == "" {
				return cli.NewExitError("--owner is required", 1)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			logrus.Info("decrypting backup, this takes a moment")
			backup, err := cipherchat.OpenBackup(data, password)
			if err != nil {
				return err
			}

			// Nothing from the payload may be used before this check.
			if err := backup.VerifyOwner(owner); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"owner":    backup.Payload.Owner.Username,
				"messages": len(backup.Payload.Messages),
				"contacts": len(backup.Payload.Contacts),
				"created":  backup.Payload.CreatedAt,
			}).Info("backup is valid and decryptable")
			return nil
		},
	}
}
