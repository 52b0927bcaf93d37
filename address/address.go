// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/ripemd160"

	"github.com/RemnantLink/Reliquiae/base58"
	"github.com/RemnantLink/Reliquiae/bech32"
	"github.com/RemnantLink/Reliquiae/blech32"
	"github.com/RemnantLink/Reliquiae/chaincfg"
)

// blindingKeySize is the size of the serialized public key that blinds a
// confidential address.
const blindingKeySize = 33

// Address is an interface type for any type of destination a transaction
// output may spend to.  Decoded addresses can be encoded back to their
// original string form with EncodeAddress.
type Address interface {
	// String returns the string encoding of the transaction output
	// destination.
	//
	// Please note that String differs subtly from EncodeAddress: String
	// will return the value as a string without any conversion, while
	// EncodeAddress may convert destination types (for example,
	// converting pubkeys to P2PKH addresses) before encoding as a
	// payment address string.
	String() string

	// EncodeAddress returns the string encoding of the payment address
	// associated with the Address value.  See the comment on String
	// for how this method differs from String.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the address to be used
	// when inserting the address into a txout's script.
	ScriptAddress() []byte

	// IsForNet returns whether or not the address is associated with the
	// passed network.
	IsForNet(*chaincfg.Params) bool
}

// encodeAddress returns a human-readable payment address given a payload and
// netID which encodes the network and address type.  It is used in both
// pay-to-pubkey-hash (P2PKH) and pay-to-script-hash (P2SH) address encoding.
func encodeAddress(payload []byte, netID byte) string {
	return base58.CheckEncode(payload, netID)
}

// encodeSegWitAddress creates a bech32 (or bech32m for witness versions
// above 0) encoded address string representing the given witness version and
// witness program.
func encodeSegWitAddress(hrp string, witnessVersion byte,
	witnessProgram []byte) (string, error) {

	// Group the address bytes into 5 bit groups, as this is what is used
	// to encode each character in the address string.
	converted, err := bech32.ConvertBits(witnessProgram, 8, 5, true)
	if err != nil {
		return "", err
	}

	// Concatenate the witness version and program, and encode the
	// resulting bytes using bech32 encoding.
	combined := make([]byte, len(converted)+1)
	combined[0] = witnessVersion
	copy(combined[1:], converted)

	if witnessVersion == 0 {
		return bech32.Encode(hrp, combined)
	}
	return bech32.EncodeM(hrp, combined)
}

// encodeConfidentialSegWitAddress creates a blech32 (or blech32m for witness
// versions above 0) encoded address string representing the given witness
// version, blinding key and witness program.
func encodeConfidentialSegWitAddress(hrp string, witnessVersion byte,
	blindingKey []byte, witnessProgram []byte) (string, error) {

	payload := make([]byte, 0, len(blindingKey)+len(witnessProgram))
	payload = append(payload, blindingKey...)
	payload = append(payload, witnessProgram...)

	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}

	combined := make([]byte, len(converted)+1)
	combined[0] = witnessVersion
	copy(combined[1:], converted)

	if witnessVersion == 0 {
		return blech32.Encode(hrp, combined)
	}
	return blech32.EncodeM(hrp, combined)
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if it is a valid encoding for a known address type and is for the
// provided network.
//
// Decoding never panics: for any input string the function either returns a
// decoded address or an Error from the fixed set of ErrorKinds.  Failures
// specific to one address family (a foreign prefix, a bad witness program
// size, the wrong checksum variant for the embedded witness version) are
// reported with that family's kind, while strings no family claims at all
// are reported as ErrInvalidFormat.
func DecodeAddress(addr string, defaultNet *chaincfg.Params) (Address, error) {
	// A string with the bech32 family shape routes to the segwit decoders.
	// Which of the two families applies is decided by which checksum
	// engine verifies the string: the two engines use different generator
	// polynomials and checksum lengths, so at most one can claim it.
	hrp, data, bechVersion, err := bech32.DecodeGeneric(addr)
	if err == nil {
		log.Tracef("Address %q verified under bech32 checksum %v",
			addr, bechVersion)
		return decodeSegWitAddress(hrp, data, bechVersion, defaultNet)
	}

	hrp, data, blechVersion, err := blech32.DecodeGeneric(addr)
	if err == nil {
		log.Tracef("Address %q verified under blech32 checksum %v",
			addr, blechVersion)
		return decodeConfidentialAddress(hrp, data, blechVersion,
			defaultNet)
	}

	// Anything else is routed to Base58Check.
	decoded, netID, err := base58.CheckDecode(addr)
	if err == nil {
		return decodeBase58Address(decoded, netID, defaultNet)
	}

	// No family claims the string.
	return nil, addressError(ErrInvalidFormat)
}

// decodeSegWitAddress decodes a checksum-verified bech32 data section into a
// witness address, enforcing the prefix, checksum variant and witness program
// size rules.
func decodeSegWitAddress(hrp string, data []byte,
	checksumVersion bech32.Version, net *chaincfg.Params) (Address, error) {

	// The first 5-bit group is the witness version, so an empty data
	// section cannot be a witness address.
	if len(data) < 1 {
		return nil, addressError(ErrInvalidFormat)
	}

	// The prefix must match the network before anything else is
	// diagnosed, so that an address from a foreign network is always
	// reported as a prefix problem.
	if hrp != net.Bech32HRPSegwit {
		return nil, addressError(ErrBech32Prefix)
	}

	// The embedded witness version dictates which checksum variant the
	// string must have used.
	version := data[0]
	if version == 0 && checksumVersion != bech32.Version0 {
		return nil, addressError(ErrBech32mUnexpected)
	}
	if version != 0 && checksumVersion != bech32.VersionM {
		return nil, addressError(ErrBech32mRequired)
	}

	// The remaining characters of the address are the witness program,
	// regrouped from 5 to 8 bits.
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, addressError(ErrInvalidFormat)
	}

	if version == 0 {
		if len(program) != 20 && len(program) != 32 {
			return nil, addressError(ErrBech32V0DataSize)
		}
		return newAddressSegWit(hrp, version, program)
	}

	if version > 16 {
		return nil, addressError(ErrBech32WitnessVersion)
	}
	if len(program) < 2 || len(program) > 40 {
		return nil, addressError(ErrBech32DataSize)
	}

	return newAddressSegWit(hrp, version, program)
}

// decodeConfidentialAddress decodes a checksum-verified blech32 data section
// into a confidential witness address.  The rules mirror decodeSegWitAddress
// with the size thresholds shifted by the 33 byte blinding key that precedes
// the witness program.
func decodeConfidentialAddress(hrp string, data []byte,
	checksumVersion blech32.Version, net *chaincfg.Params) (Address, error) {

	if len(data) < 1 {
		return nil, addressError(ErrInvalidFormat)
	}

	if hrp != net.Blech32HRPSegwit {
		return nil, addressError(ErrBlech32Prefix)
	}

	version := data[0]
	if version == 0 && checksumVersion != blech32.Version0 {
		return nil, addressError(ErrBlech32mUnexpected)
	}
	if version != 0 && checksumVersion != blech32.VersionM {
		return nil, addressError(ErrBlech32mRequired)
	}

	// The payload regroups to the 33 byte blinding key followed by the
	// witness program.
	payload, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, addressError(ErrInvalidFormat)
	}

	if version == 0 {
		if len(payload) != blindingKeySize+20 &&
			len(payload) != blindingKeySize+32 {

			return nil, addressError(ErrBlech32V0DataSize)
		}
		return newAddressConfidential(hrp, version,
			payload[:blindingKeySize], payload[blindingKeySize:])
	}

	if version > 16 {
		return nil, addressError(ErrBlech32WitnessVersion)
	}
	if len(payload) < blindingKeySize+2 ||
		len(payload) > blindingKeySize+40 {

		return nil, addressError(ErrBlech32DataSize)
	}

	return newAddressConfidential(hrp, version, payload[:blindingKeySize],
		payload[blindingKeySize:])
}

// decodeBase58Address maps a Base58Check-decoded payload onto one of the
// legacy address roles of the network.  A checksum-valid string that matches
// no role is reported as a prefix problem, since the version byte is what
// identifies the role.
func decodeBase58Address(decoded []byte, netID byte,
	net *chaincfg.Params) (Address, error) {

	switch len(decoded) {
	case ripemd160.Size: // P2PKH or P2SH
		switch netID {
		case net.PubKeyHashAddrID:
			return newAddressPubKeyHash(decoded, netID)
		case net.ScriptHashAddrID:
			return newAddressScriptHashFromHash(decoded, netID)
		}

	case 1 + blindingKeySize + ripemd160.Size: // blinded P2PKH or P2SH
		payloadID := decoded[0]
		validPayload := payloadID == net.PubKeyHashAddrID ||
			payloadID == net.ScriptHashAddrID
		if netID == net.BlindedAddrID && validPayload {
			return newAddressBlinded(netID, payloadID,
				decoded[1:1+blindingKeySize],
				decoded[1+blindingKeySize:])
		}
	}

	return nil, addressError(ErrBase58Prefix)
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH)
// transaction.
type AddressPubKeyHash struct {
	hash  [ripemd160.Size]byte
	netID byte
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash.  pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte,
	net *chaincfg.Params) (*AddressPubKeyHash, error) {

	return newAddressPubKeyHash(pkHash, net.PubKeyHashAddrID)
}

// newAddressPubKeyHash is the internal API to create a pubkey hash address
// with a known leading identifier byte for a network, rather than looking it
// up through its parameters.  This is useful when creating a new address
// structure from a string encoding where the identifier byte is already
// known.
func newAddressPubKeyHash(pkHash []byte, netID byte) (*AddressPubKeyHash,
	error) {

	// Check for a valid pubkey hash length.
	if len(pkHash) != ripemd160.Size {
		return nil, errors.New("pkHash must be 20 bytes")
	}

	addr := &AddressPubKeyHash{netID: netID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a pay-to-pubkey-hash address.
// Part of the Address interface.
func (a *AddressPubKeyHash) EncodeAddress() string {
	return encodeAddress(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay to
// a pubkey hash.  Part of the Address interface.
func (a *AddressPubKeyHash) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet returns whether or not the pay-to-pubkey-hash address is
// associated with the passed network.
func (a *AddressPubKeyHash) IsForNet(net *chaincfg.Params) bool {
	return a.netID == net.PubKeyHashAddrID
}

// String returns a human-readable string for the pay-to-pubkey-hash address.
// This is equivalent to calling EncodeAddress, but is provided so the type
// can be used as a fmt.Stringer.
func (a *AddressPubKeyHash) String() string {
	return a.EncodeAddress()
}

// Hash160 returns the underlying array of the pubkey hash.  This can be
// useful when an array is more appropriate than a slice (for example, when
// used as map keys).
func (a *AddressPubKeyHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// AddressScriptHash is an Address for a pay-to-script-hash (P2SH)
// transaction.
type AddressScriptHash struct {
	hash  [ripemd160.Size]byte
	netID byte
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash.  scriptHash
// must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte,
	net *chaincfg.Params) (*AddressScriptHash, error) {

	return newAddressScriptHashFromHash(scriptHash, net.ScriptHashAddrID)
}

// newAddressScriptHashFromHash is the internal API to create a script hash
// address with a known leading identifier byte for a network, rather than
// looking it up through its parameters.
func newAddressScriptHashFromHash(scriptHash []byte,
	netID byte) (*AddressScriptHash, error) {

	// Check for a valid script hash length.
	if len(scriptHash) != ripemd160.Size {
		return nil, errors.New("scriptHash must be 20 bytes")
	}

	addr := &AddressScriptHash{netID: netID}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a pay-to-script-hash address.
// Part of the Address interface.
func (a *AddressScriptHash) EncodeAddress() string {
	return encodeAddress(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay to
// a script hash.  Part of the Address interface.
func (a *AddressScriptHash) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet returns whether or not the pay-to-script-hash address is
// associated with the passed network.
func (a *AddressScriptHash) IsForNet(net *chaincfg.Params) bool {
	return a.netID == net.ScriptHashAddrID
}

// String returns a human-readable string for the pay-to-script-hash address.
func (a *AddressScriptHash) String() string {
	return a.EncodeAddress()
}

// Hash160 returns the underlying array of the script hash.
func (a *AddressScriptHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// AddressBlinded is an Address for a blinded legacy (Base58 encoded)
// address.  It wraps a P2PKH or P2SH destination together with the public
// key used to blind the amounts and asset types of outputs paying to it.
type AddressBlinded struct {
	blindingKey [blindingKeySize]byte
	hash        [ripemd160.Size]byte
	netID       byte
	payloadID   byte
}

// NewAddressBlinded returns a new blinded legacy address wrapping the passed
// P2PKH or P2SH address with the given blinding key.
func NewAddressBlinded(blindingKey []byte, payload Address,
	net *chaincfg.Params) (*AddressBlinded, error) {

	switch payload.(type) {
	case *AddressPubKeyHash, *AddressScriptHash:
	default:
		return nil, errors.New("only P2PKH and P2SH addresses can be blinded")
	}
	if !payload.IsForNet(net) {
		return nil, errors.New("payload address is not for the given network")
	}

	var payloadID byte
	if _, ok := payload.(*AddressScriptHash); ok {
		payloadID = net.ScriptHashAddrID
	} else {
		payloadID = net.PubKeyHashAddrID
	}

	return newAddressBlinded(net.BlindedAddrID, payloadID, blindingKey,
		payload.ScriptAddress())
}

// newAddressBlinded is the internal API to create a blinded legacy address
// with known identifier bytes.
func newAddressBlinded(netID, payloadID byte, blindingKey,
	hash []byte) (*AddressBlinded, error) {

	if len(blindingKey) != blindingKeySize {
		return nil, errors.New("blinding key must be 33 bytes")
	}
	if len(hash) != ripemd160.Size {
		return nil, errors.New("payload hash must be 20 bytes")
	}

	addr := &AddressBlinded{netID: netID, payloadID: payloadID}
	copy(addr.blindingKey[:], blindingKey)
	copy(addr.hash[:], hash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a blinded legacy address.
// Part of the Address interface.
func (a *AddressBlinded) EncodeAddress() string {
	payload := make([]byte, 0, 1+blindingKeySize+ripemd160.Size)
	payload = append(payload, a.payloadID)
	payload = append(payload, a.blindingKey[:]...)
	payload = append(payload, a.hash[:]...)
	return encodeAddress(payload, a.netID)
}

// ScriptAddress returns the hash bytes of the blinded destination.  Part of
// the Address interface.
func (a *AddressBlinded) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet returns whether or not the blinded address is associated with the
// passed network.
func (a *AddressBlinded) IsForNet(net *chaincfg.Params) bool {
	if a.netID != net.BlindedAddrID {
		return false
	}
	return a.payloadID == net.PubKeyHashAddrID ||
		a.payloadID == net.ScriptHashAddrID
}

// String returns a human-readable string for the blinded address.
func (a *AddressBlinded) String() string {
	return a.EncodeAddress()
}

// BlindingPubKey parses the 33 byte blinding key into a secp256k1 public
// key.  The format rules only constrain the key's length, so parsing may
// fail even for a well-formed address.
func (a *AddressBlinded) BlindingPubKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(a.blindingKey[:])
}

// Unconfidential returns the P2PKH or P2SH address wrapped by the blinded
// address, with the blinding key stripped.  The payload identifier byte is
// resolved against the passed network to recover the wrapped role.
func (a *AddressBlinded) Unconfidential(net *chaincfg.Params) Address {
	if a.payloadID == net.ScriptHashAddrID {
		addr := &AddressScriptHash{netID: a.payloadID}
		copy(addr.hash[:], a.hash[:])
		return addr
	}

	if a.payloadID != net.PubKeyHashAddrID {
		log.Warnf("blinded address %v wraps unknown payload "+
			"identifier %d", a, a.payloadID)
	}
	addr := &AddressPubKeyHash{netID: a.payloadID}
	copy(addr.hash[:], a.hash[:])
	return addr
}

// AddressSegWit is an Address for a segregated witness destination of any
// witness version.
type AddressSegWit struct {
	hrp            string
	witnessVersion byte
	witnessProgram []byte
}

// NewAddressSegWit returns a new AddressSegWit for the given witness version
// and program.
func NewAddressSegWit(witnessVersion byte, witnessProgram []byte,
	net *chaincfg.Params) (*AddressSegWit, error) {

	return newAddressSegWit(net.Bech32HRPSegwit, witnessVersion,
		witnessProgram)
}

// newAddressSegWit is the internal API to create a segwit address with a
// known human-readable prefix.
func newAddressSegWit(hrp string, witnessVersion byte,
	witnessProgram []byte) (*AddressSegWit, error) {

	// Check for valid program length for witness version 0, which is
	// 20 bytes for P2WPKH and 32 bytes for P2WSH.
	if witnessVersion == 0 && len(witnessProgram) != 20 &&
		len(witnessProgram) != 32 {

		return nil, errors.New("witness program must be 20 or 32 " +
			"bytes for v0")
	}
	if witnessVersion > 16 {
		return nil, errors.New("witness version must be between 0 and 16")
	}
	if len(witnessProgram) < 2 || len(witnessProgram) > 40 {
		return nil, errors.New("witness program must be between 2 " +
			"and 40 bytes")
	}

	program := make([]byte, len(witnessProgram))
	copy(program, witnessProgram)

	return &AddressSegWit{
		hrp:            hrp,
		witnessVersion: witnessVersion,
		witnessProgram: program,
	}, nil
}

// EncodeAddress returns the bech32 (or bech32m for witness versions above 0)
// string encoding of an AddressSegWit.  Part of the Address interface.
func (a *AddressSegWit) EncodeAddress() string {
	str, err := encodeSegWitAddress(
		a.hrp, a.witnessVersion, a.witnessProgram,
	)
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the witness program bytes.  Part of the Address
// interface.
func (a *AddressSegWit) ScriptAddress() []byte {
	return a.witnessProgram
}

// IsForNet returns whether the AddressSegWit is associated with the passed
// network.
func (a *AddressSegWit) IsForNet(net *chaincfg.Params) bool {
	return a.hrp == net.Bech32HRPSegwit
}

// String returns a human-readable string for the AddressSegWit.
func (a *AddressSegWit) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the bech32 encoded AddressSegWit.
func (a *AddressSegWit) Hrp() string {
	return a.hrp
}

// WitnessVersion returns the witness version of the AddressSegWit.
func (a *AddressSegWit) WitnessVersion() byte {
	return a.witnessVersion
}

// WitnessProgram returns the witness program of the AddressSegWit.
func (a *AddressSegWit) WitnessProgram() []byte {
	return a.witnessProgram
}

// AddressConfidential is an Address for a confidential segregated witness
// destination: a witness destination of any version together with the public
// key used to blind outputs paying to it.
type AddressConfidential struct {
	hrp            string
	witnessVersion byte
	blindingKey    [blindingKeySize]byte
	witnessProgram []byte
}

// NewAddressConfidential returns a new AddressConfidential wrapping the
// passed witness address with the given blinding key.
func NewAddressConfidential(blindingKey []byte, payload *AddressSegWit,
	net *chaincfg.Params) (*AddressConfidential, error) {

	if !payload.IsForNet(net) {
		return nil, errors.New("payload address is not for the given network")
	}

	return newAddressConfidential(net.Blech32HRPSegwit,
		payload.WitnessVersion(), blindingKey,
		payload.WitnessProgram())
}

// newAddressConfidential is the internal API to create a confidential segwit
// address with a known human-readable prefix.
func newAddressConfidential(hrp string, witnessVersion byte, blindingKey,
	witnessProgram []byte) (*AddressConfidential, error) {

	if len(blindingKey) != blindingKeySize {
		return nil, errors.New("blinding key must be 33 bytes")
	}
	if witnessVersion == 0 && len(witnessProgram) != 20 &&
		len(witnessProgram) != 32 {

		return nil, errors.New("witness program must be 20 or 32 " +
			"bytes for v0")
	}
	if witnessVersion > 16 {
		return nil, errors.New("witness version must be between 0 and 16")
	}
	if len(witnessProgram) < 2 || len(witnessProgram) > 40 {
		return nil, errors.New("witness program must be between 2 " +
			"and 40 bytes")
	}

	addr := &AddressConfidential{
		hrp:            hrp,
		witnessVersion: witnessVersion,
		witnessProgram: make([]byte, len(witnessProgram)),
	}
	copy(addr.blindingKey[:], blindingKey)
	copy(addr.witnessProgram, witnessProgram)
	return addr, nil
}

// EncodeAddress returns the blech32 (or blech32m for witness versions above
// 0) string encoding of an AddressConfidential.  Part of the Address
// interface.
func (a *AddressConfidential) EncodeAddress() string {
	str, err := encodeConfidentialSegWitAddress(
		a.hrp, a.witnessVersion, a.blindingKey[:], a.witnessProgram,
	)
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the witness program bytes.  Part of the Address
// interface.
func (a *AddressConfidential) ScriptAddress() []byte {
	return a.witnessProgram
}

// IsForNet returns whether the AddressConfidential is associated with the
// passed network.
func (a *AddressConfidential) IsForNet(net *chaincfg.Params) bool {
	return a.hrp == net.Blech32HRPSegwit
}

// String returns a human-readable string for the AddressConfidential.
func (a *AddressConfidential) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the blech32 encoded address.
func (a *AddressConfidential) Hrp() string {
	return a.hrp
}

// WitnessVersion returns the witness version of the wrapped destination.
func (a *AddressConfidential) WitnessVersion() byte {
	return a.witnessVersion
}

// WitnessProgram returns the witness program of the wrapped destination.
func (a *AddressConfidential) WitnessProgram() []byte {
	return a.witnessProgram
}

// BlindingPubKey parses the 33 byte blinding key into a secp256k1 public
// key.  The format rules only constrain the key's length, so parsing may
// fail even for a well-formed address.
func (a *AddressConfidential) BlindingPubKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(a.blindingKey[:])
}

// Unconfidential returns the witness address wrapped by the confidential
// address, with the blinding key stripped.  The human-readable prefix is the
// bech32 prefix of the passed network.
func (a *AddressConfidential) Unconfidential(net *chaincfg.Params) Address {
	return &AddressSegWit{
		hrp:            net.Bech32HRPSegwit,
		witnessVersion: a.witnessVersion,
		witnessProgram: a.witnessProgram,
	}
}
