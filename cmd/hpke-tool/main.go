// Command hpke-tool is a small demonstration CLI around the hpke package:
// generate a KEM keypair, seal a message to a recipient, or open one.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hpke-go/hpke"
)

var suites = map[string]hpke.KemID{
	"x25519": hpke.KemX25519HkdfSha256,
	"p256":   hpke.KemP256HkdfSha256,
	"hybrid": hpke.KemMlkem768X25519,
}

func suiteFor(name string) (*hpke.Suite, error) {
	kemID, ok := suites[name]
	if !ok {
		return nil, fmt.Errorf("unknown -kem %q (want x25519, p256, or hybrid)", name)
	}
	return hpke.NewSuite(kemID, hpke.KdfHkdfSha256, hpke.AeadChaCha20Poly1305)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("hpke-tool: ")

	genCmd := flag.NewFlagSet("gen", flag.ExitOnError)
	genKem := genCmd.String("kem", "x25519", "KEM: x25519, p256, or hybrid")

	sealCmd := flag.NewFlagSet("seal", flag.ExitOnError)
	sealKem := sealCmd.String("kem", "x25519", "KEM: x25519, p256, or hybrid")
	sealPK := sealCmd.String("pk", "", "recipient public key, hex-encoded")
	sealInfo := sealCmd.String("info", "", "application info string, hex-encoded")
	sealAAD := sealCmd.String("aad", "", "additional authenticated data, hex-encoded")

	openCmd := flag.NewFlagSet("open", flag.ExitOnError)
	openKem := openCmd.String("kem", "x25519", "KEM: x25519, p256, or hybrid")
	openSK := openCmd.String("sk", "", "recipient private key, hex-encoded")
	openEnc := openCmd.String("enc", "", "encapsulated key, hex-encoded")
	openInfo := openCmd.String("info", "", "application info string, hex-encoded")
	openAAD := openCmd.String("aad", "", "additional authenticated data, hex-encoded")

	if len(os.Args) < 2 {
		log.Fatal("usage: hpke-tool <gen|seal|open> [flags]")
	}

	switch os.Args[1] {
	case "gen":
		genCmd.Parse(os.Args[2:])
		suite, err := suiteFor(*genKem)
		if err != nil {
			log.Fatal(err)
		}
		sk, pk, err := suite.GenerateKeyPair()
		if err != nil {
			log.Fatalf("generating keypair: %v", err)
		}
		fmt.Printf("pk: %s\n", hex.EncodeToString(pk.Bytes()))
		fmt.Printf("sk: %s\n", hex.EncodeToString(sk.Bytes()))

	case "seal":
		sealCmd.Parse(os.Args[2:])
		suite, err := suiteFor(*sealKem)
		if err != nil {
			log.Fatal(err)
		}
		pkBytes, err := hexDecode(*sealPK)
		if err != nil {
			log.Fatalf("decoding -pk: %v", err)
		}
		pk, err := suite.DeserializePublicKey(pkBytes)
		if err != nil {
			log.Fatalf("parsing -pk: %v", err)
		}
		info, err := hexDecode(*sealInfo)
		if err != nil {
			log.Fatalf("decoding -info: %v", err)
		}
		aad, err := hexDecode(*sealAAD)
		if err != nil {
			log.Fatalf("decoding -aad: %v", err)
		}
		pt, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("reading stdin: %v", err)
		}

		enc, ct, err := suite.SealBase(pk, info, aad, pt)
		if err != nil {
			log.Fatalf("sealing: %v", err)
		}
		fmt.Fprintf(os.Stderr, "enc: %s\n", hex.EncodeToString(enc))
		os.Stdout.Write(ct)

	case "open":
		openCmd.Parse(os.Args[2:])
		suite, err := suiteFor(*openKem)
		if err != nil {
			log.Fatal(err)
		}
		skBytes, err := hexDecode(*openSK)
		if err != nil {
			log.Fatalf("decoding -sk: %v", err)
		}
		sk, err := suite.DeserializePrivateKey(skBytes)
		if err != nil {
			log.Fatalf("parsing -sk: %v", err)
		}
		enc, err := hexDecode(*openEnc)
		if err != nil {
			log.Fatalf("decoding -enc: %v", err)
		}
		info, err := hexDecode(*openInfo)
		if err != nil {
			log.Fatalf("decoding -info: %v", err)
		}
		aad, err := hexDecode(*openAAD)
		if err != nil {
			log.Fatalf("decoding -aad: %v", err)
		}
		ct, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("reading stdin: %v", err)
		}

		pt, err := suite.OpenBase(enc, sk, info, aad, ct)
		if err != nil {
			log.Fatalf("opening: %v", err)
		}
		os.Stdout.Write(pt)

	default:
		log.Fatalf("unknown subcommand %q (want gen, seal, or open)", os.Args[1])
	}
}

func hexDecode(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}
